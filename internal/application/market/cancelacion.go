package market

import (
	"context"
	"math"
	"time"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// CancelacionUseCase implementa el protocolo de cancelación por consentimiento
// mutuo sobre órdenes en Pendiente o Enviado: una parte solicita y solo la
// contraparte puede aceptar o rechazar. No hay cancelación unilateral ni
// vencimiento automático de solicitudes.
type CancelacionUseCase struct {
	txRunner TxRunner
}

// NewCancelacionUseCase construye el caso de uso.
func NewCancelacionUseCase(txRunner TxRunner) *CancelacionUseCase {
	return &CancelacionUseCase{txRunner: txRunner}
}

// Solicitar registra qué parte pide la cancelación. Repetir la solicitud
// antes de la resolución re-registra al solicitante, no es un error.
func (uc *CancelacionUseCase) Solicitar(ctx context.Context, caller string, ordenID uint32) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		orden, err := r.Ordenes.Get(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrOrderNotFound
		}
		if !orden.EsParte(caller) {
			return domain.ErrNotPermitted
		}
		if orden.Estado.Terminal() {
			return domain.ErrInvalidState
		}
		orden.CancelacionPedidaPor = caller
		orden.UpdatedAt = time.Now()
		return r.Ordenes.Put(orden)
	})
}

// Aceptar resuelve la solicitud a favor de la cancelación. Debe llamarla la
// contraparte del solicitante. En un único paso atómico: restaura el stock
// del producto, reembolsa el monto completo al comprador y transiciona la
// orden a Cancelada.
func (uc *CancelacionUseCase) Aceptar(ctx context.Context, caller string, ordenID uint32) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		orden, err := r.Ordenes.Get(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrOrderNotFound
		}
		if !orden.EsParte(caller) {
			return domain.ErrNotPermitted
		}
		if orden.Estado.Terminal() {
			return domain.ErrInvalidState
		}
		if orden.CancelacionPedidaPor == "" {
			return domain.ErrInvalidState
		}
		if orden.CancelacionPedidaPor == caller {
			return domain.ErrNotPermitted
		}

		producto, err := r.Productos.Get(orden.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductNotFound
		}
		if uint64(producto.Stock)+uint64(orden.Cantidad) > math.MaxUint32 {
			return domain.ErrStockOverflow
		}

		ahora := time.Now()
		producto.Stock += orden.Cantidad
		producto.UpdatedAt = ahora
		if err := r.Productos.Put(producto); err != nil {
			return err
		}

		orden.Estado = entity.EstadoCancelada
		orden.CancelacionPedidaPor = ""
		orden.UpdatedAt = ahora
		if err := r.Ordenes.Put(orden); err != nil {
			return err
		}
		_, err = liberar(r.Custodia, orden.ID, orden.Comprador, ahora)
		return err
	})
}

// Rechazar limpia la solicitud pendiente sin cambiar el estado de la orden,
// que sigue su camino normal y admite una solicitud nueva más adelante.
func (uc *CancelacionUseCase) Rechazar(ctx context.Context, caller string, ordenID uint32) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		orden, err := r.Ordenes.Get(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrOrderNotFound
		}
		if !orden.EsParte(caller) {
			return domain.ErrNotPermitted
		}
		if orden.CancelacionPedidaPor == "" {
			return domain.ErrInvalidState
		}
		if orden.CancelacionPedidaPor == caller {
			return domain.ErrNotPermitted
		}
		orden.CancelacionPedidaPor = ""
		orden.UpdatedAt = time.Now()
		return r.Ordenes.Put(orden)
	})
}
