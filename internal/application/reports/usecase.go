package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// LimiteTopPorDefecto cantidad de filas de los rankings cuando no se pide otra.
const LimiteTopPorDefecto = 5

// ReportsUseCase es el colaborador de reportes: agregación pura sobre los
// accessores de lectura del ledger, sin mutar estado y sin exponer el listado
// privado de órdenes de ningún comprador.
type ReportsUseCase struct {
	productos  repository.ProductoRepository
	ordenes    repository.OrdenRepository
	reputacion repository.ReputacionRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	productos repository.ProductoRepository,
	ordenes repository.OrdenRepository,
	reputacion repository.ReputacionRepository,
) *ReportsUseCase {
	return &ReportsUseCase{productos: productos, ordenes: ordenes, reputacion: reputacion}
}

// TopVendedores devuelve hasta `limite` cuentas con mejor reputación como
// vendedor, descendente; empates se ordenan por cantidad de calificaciones.
// Solo cuentas con al menos una calificación en esa dirección.
func (uc *ReportsUseCase) TopVendedores(limite int) ([]dto.TopReputacionDTO, error) {
	return uc.top(limite, func(r *entity.Reputacion) entity.Acumulado { return r.ComoVendedor })
}

// TopCompradores es el ranking análogo en la dirección como comprador.
func (uc *ReportsUseCase) TopCompradores(limite int) ([]dto.TopReputacionDTO, error) {
	return uc.top(limite, func(r *entity.Reputacion) entity.Acumulado { return r.ComoComprador })
}

func (uc *ReportsUseCase) top(limite int, dir func(*entity.Reputacion) entity.Acumulado) ([]dto.TopReputacionDTO, error) {
	if limite <= 0 {
		limite = LimiteTopPorDefecto
	}
	reps, err := uc.reputacion.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopReputacionDTO, 0, len(reps))
	for _, r := range reps {
		a := dir(r)
		if a.Cantidad == 0 {
			continue
		}
		out = append(out, dto.TopReputacionDTO{
			Cuenta:         r.Cuenta,
			Promedio:       a.Promedio(),
			Calificaciones: a.Cantidad,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Promedio.Equal(out[j].Promedio) {
			return out[i].Promedio.GreaterThan(out[j].Promedio)
		}
		if out[i].Calificaciones != out[j].Calificaciones {
			return out[i].Calificaciones > out[j].Calificaciones
		}
		return out[i].Cuenta < out[j].Cuenta
	})
	if len(out) > limite {
		out = out[:limite]
	}
	return out, nil
}

// ProductosMasVendidos devuelve hasta `limite` productos por unidades
// vendidas en órdenes que llegaron a Recibido, descendente.
func (uc *ReportsUseCase) ProductosMasVendidos(limite int) ([]dto.ProductoVendidoDTO, error) {
	if limite <= 0 {
		limite = LimiteTopPorDefecto
	}
	ordenes, err := uc.ordenes.List()
	if err != nil {
		return nil, err
	}
	vendidas := make(map[uint32]uint64)
	for _, o := range ordenes {
		if o.Estado == entity.EstadoRecibido {
			vendidas[o.ProductoID] += uint64(o.Cantidad)
		}
	}
	out := make([]dto.ProductoVendidoDTO, 0, len(vendidas))
	for id, unidades := range vendidas {
		p, err := uc.productos.Get(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		out = append(out, dto.ProductoVendidoDTO{
			ProductoID:       p.ID,
			Nombre:           p.Nombre,
			Categoria:        p.Categoria,
			Vendedor:         p.Vendedor,
			UnidadesVendidas: unidades,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnidadesVendidas != out[j].UnidadesVendidas {
			return out[i].UnidadesVendidas > out[j].UnidadesVendidas
		}
		return out[i].ProductoID < out[j].ProductoID
	})
	if len(out) > limite {
		out = out[:limite]
	}
	return out, nil
}

// EstadisticasCategorias devuelve las estadísticas de todas las categorías
// con al menos un producto publicado, en orden alfabético.
func (uc *ReportsUseCase) EstadisticasCategorias() ([]dto.CategoriaStatsDTO, error) {
	stats, err := uc.agregarCategorias()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaStatsDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Categoria < out[j].Categoria })
	return out, nil
}

// EstadisticaCategoria devuelve las estadísticas de una categoría. El nombre
// se normaliza igual que al publicar; categoría desconocida es ErrNotFound.
func (uc *ReportsUseCase) EstadisticaCategoria(nombre string) (*dto.CategoriaStatsDTO, error) {
	stats, err := uc.agregarCategorias()
	if err != nil {
		return nil, err
	}
	s, ok := stats[norm.NFC.String(nombre)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (uc *ReportsUseCase) agregarCategorias() (map[string]*dto.CategoriaStatsDTO, error) {
	productos, err := uc.productos.List()
	if err != nil {
		return nil, err
	}
	ordenes, err := uc.ordenes.List()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*dto.CategoriaStatsDTO)
	categoriaDe := make(map[uint32]string, len(productos))
	vendedoresPorCategoria := make(map[string]map[string]bool)
	for _, p := range productos {
		categoriaDe[p.ID] = p.Categoria
		s, ok := stats[p.Categoria]
		if !ok {
			s = &dto.CategoriaStatsDTO{Categoria: p.Categoria, CalificacionPromedio: decimal.Zero}
			stats[p.Categoria] = s
			vendedoresPorCategoria[p.Categoria] = make(map[string]bool)
		}
		s.CantidadProductos++
		vendedoresPorCategoria[p.Categoria][p.Vendedor] = true
	}

	for _, o := range ordenes {
		if o.Estado != entity.EstadoRecibido {
			continue
		}
		cat, ok := categoriaDe[o.ProductoID]
		if !ok {
			continue
		}
		s := stats[cat]
		s.TotalVentas++
		s.TotalUnidades += uint64(o.Cantidad)
	}

	// Promedio de calificación de los vendedores de la categoría, contando
	// solo a los que tienen al menos una calificación como vendedor.
	for cat, vendedores := range vendedoresPorCategoria {
		suma := decimal.Zero
		var n int64
		for v := range vendedores {
			rep, err := uc.reputacion.Get(v)
			if err != nil {
				return nil, err
			}
			if rep == nil || rep.ComoVendedor.Cantidad == 0 {
				continue
			}
			suma = suma.Add(rep.ComoVendedor.Promedio())
			n++
		}
		if n > 0 {
			stats[cat].CalificacionPromedio = suma.Div(decimal.NewFromInt(n)).Round(2)
		}
	}
	return stats, nil
}

// OrdenesDeUsuario devuelve los conteos de órdenes de la cuenta por rol y
// cuántas llegaron a Recibido, sin exponer las órdenes en sí.
func (uc *ReportsUseCase) OrdenesDeUsuario(cuenta string) (*dto.OrdenesUsuarioDTO, error) {
	ordenes, err := uc.ordenes.List()
	if err != nil {
		return nil, err
	}
	out := &dto.OrdenesUsuarioDTO{Cuenta: cuenta}
	for _, o := range ordenes {
		if o.Comprador == cuenta {
			out.ComoComprador++
			if o.Estado == entity.EstadoRecibido {
				out.CompletadasComoComprador++
			}
		}
		if o.Vendedor == cuenta {
			out.ComoVendedor++
			if o.Estado == entity.EstadoRecibido {
				out.CompletadasComoVendedor++
			}
		}
	}
	return out, nil
}
