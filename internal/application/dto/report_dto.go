package dto

import "github.com/shopspring/decimal"

// TopReputacionDTO una cuenta con su reputación en la dirección consultada.
type TopReputacionDTO struct {
	Cuenta         string          `json:"cuenta"`
	Promedio       decimal.Decimal `json:"promedio"`
	Calificaciones uint32          `json:"calificaciones"`
}

// ProductoVendidoDTO un producto con sus unidades vendidas (órdenes recibidas).
type ProductoVendidoDTO struct {
	ProductoID       uint32 `json:"producto_id"`
	Nombre           string `json:"nombre"`
	Categoria        string `json:"categoria"`
	Vendedor         string `json:"vendedor"`
	UnidadesVendidas uint64 `json:"unidades_vendidas"`
}

// CategoriaStatsDTO estadísticas agregadas de una categoría.
type CategoriaStatsDTO struct {
	Categoria            string          `json:"categoria"`
	TotalVentas          uint32          `json:"total_ventas"`
	TotalUnidades        uint64          `json:"total_unidades"`
	CalificacionPromedio decimal.Decimal `json:"calificacion_promedio"`
	CantidadProductos    uint32          `json:"cantidad_productos"`
}

// OrdenesUsuarioDTO conteos de órdenes de una cuenta, sin exponer el listado.
type OrdenesUsuarioDTO struct {
	Cuenta                   string `json:"cuenta"`
	ComoComprador            uint32 `json:"como_comprador"`
	ComoVendedor             uint32 `json:"como_vendedor"`
	CompletadasComoComprador uint32 `json:"completadas_como_comprador"`
	CompletadasComoVendedor  uint32 `json:"completadas_como_vendedor"`
}
