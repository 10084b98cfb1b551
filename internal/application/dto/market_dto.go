package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroRequest entrada para registrar o modificar el rol de la cuenta.
type RegistroRequest struct {
	Rol string `json:"rol" validate:"required,oneof=comprador vendedor ambos"`
}

// RolResponse rol de una cuenta; Rol vacío significa no registrada.
type RolResponse struct {
	Cuenta     string `json:"cuenta"`
	Rol        string `json:"rol,omitempty"`
	Registrada bool   `json:"registrada"`
}

// PublicarRequest entrada para publicar un producto.
type PublicarRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=64"`
	Descripcion string `json:"descripcion" validate:"max=256"`
	Precio      uint64 `json:"precio" validate:"required,gt=0"`
	Stock       uint32 `json:"stock" validate:"required,gt=0"`
	Categoria   string `json:"categoria" validate:"max=32"`
}

// PublicarResponse identificador del producto creado.
type PublicarResponse struct {
	ID uint32 `json:"id"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          uint32    `json:"id"`
	Vendedor    string    `json:"vendedor"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Categoria   string    `json:"categoria"`
	Precio      uint64    `json:"precio"`
	Stock       uint32    `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductoListResponse lista de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
}

// ComprarRequest entrada para crear una orden. Pago es el valor adjunto a la
// llamada, verificado por el host; debe ser exactamente precio×cantidad.
type ComprarRequest struct {
	ProductoID uint32 `json:"producto_id" validate:"required"`
	Cantidad   uint32 `json:"cantidad" validate:"required,gt=0"`
	Pago       uint64 `json:"pago" validate:"required"`
}

// ComprarResponse identificador de la orden creada.
type ComprarResponse struct {
	ID uint32 `json:"id"`
}

// OrdenResponse salida de una orden.
type OrdenResponse struct {
	ID                   uint32    `json:"id"`
	Comprador            string    `json:"comprador"`
	Vendedor             string    `json:"vendedor"`
	ProductoID           uint32    `json:"producto_id"`
	Cantidad             uint32    `json:"cantidad"`
	PrecioUnitario       uint64    `json:"precio_unitario"`
	Monto                uint64    `json:"monto"`
	Estado               string    `json:"estado"`
	CancelacionPedidaPor string    `json:"cancelacion_pedida_por,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// OrdenListResponse lista de órdenes.
type OrdenListResponse struct {
	Items []OrdenResponse `json:"items"`
}

// FondosResponse monto actualmente en custodia de una orden.
type FondosResponse struct {
	OrdenID  uint32 `json:"orden_id"`
	Retenido uint64 `json:"retenido"`
}

// SaldoResponse saldo liquidado de la cuenta.
type SaldoResponse struct {
	Cuenta string `json:"cuenta"`
	Saldo  uint64 `json:"saldo"`
}

// CalificarRequest entrada para calificar la contraparte de una orden.
type CalificarRequest struct {
	Puntos uint8 `json:"puntos" validate:"required,min=1,max=5"`
}

// ReputacionDireccionDTO acumulador de una dirección con su promedio.
type ReputacionDireccionDTO struct {
	Calificaciones uint32          `json:"calificaciones"`
	Promedio       decimal.Decimal `json:"promedio"`
}

// ReputacionResponse reputación de una cuenta en ambas direcciones.
type ReputacionResponse struct {
	Cuenta        string                 `json:"cuenta"`
	ComoComprador ReputacionDireccionDTO `json:"como_comprador"`
	ComoVendedor  ReputacionDireccionDTO `json:"como_vendedor"`
}
