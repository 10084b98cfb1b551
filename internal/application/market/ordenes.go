package market

import (
	"context"
	"math/bits"
	"time"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// OrdenesUseCase es el ledger de órdenes: crea órdenes y conduce la máquina
// de estados Pendiente→Enviado→Recibido. Toda transición re-valida rol,
// pertenencia y estado antes de mutar, y las mutaciones de stock, orden y
// custodia se aplican como un único paso atómico.
type OrdenesUseCase struct {
	txRunner TxRunner
	usuarios repository.UsuarioRepository
	ordenes  repository.OrdenRepository
	custodia repository.CustodiaRepository
}

// NewOrdenesUseCase construye el caso de uso.
func NewOrdenesUseCase(
	txRunner TxRunner,
	usuarios repository.UsuarioRepository,
	ordenes repository.OrdenRepository,
	custodia repository.CustodiaRepository,
) *OrdenesUseCase {
	return &OrdenesUseCase{txRunner: txRunner, usuarios: usuarios, ordenes: ordenes, custodia: custodia}
}

// Comprar crea una orden en Pendiente: descuenta stock, asigna el siguiente
// identificador y retiene el pago en custodia, todo en un paso. El pago
// adjunto debe ser exactamente precio×cantidad; cualquier diferencia aborta
// la llamada sin efecto alguno (sin custodia parcial, sin baja de stock).
// Devuelve el identificador de la nueva orden.
func (uc *OrdenesUseCase) Comprar(ctx context.Context, comprador string, productoID uint32, cantidad uint32, pago uint64) (uint32, error) {
	usuario, err := uc.usuarios.Get(comprador)
	if err != nil {
		return 0, err
	}
	if usuario == nil {
		return 0, domain.ErrNotRegistered
	}
	if !usuario.Rol.PuedeComprar() {
		return 0, domain.ErrNotPermitted
	}
	if cantidad == 0 {
		return 0, domain.ErrInvalidParam
	}

	var ordenID uint32
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		producto, err := r.Productos.Get(productoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductNotFound
		}
		if producto.Vendedor == comprador {
			return domain.ErrSelfPurchase
		}
		if producto.Stock < cantidad {
			return domain.ErrInsufficientStock
		}
		alto, monto := bits.Mul64(producto.Precio, uint64(cantidad))
		if alto != 0 {
			return domain.ErrInvalidParam
		}
		if pago < monto {
			return domain.ErrInsufficientPayment
		}
		if pago > monto {
			return domain.ErrExcessivePayment
		}

		id, err := r.Ordenes.NextID()
		if err != nil {
			return err
		}
		ahora := time.Now()

		producto.Stock -= cantidad
		producto.UpdatedAt = ahora
		if err := r.Productos.Put(producto); err != nil {
			return err
		}
		if err := r.Ordenes.Put(&entity.Orden{
			ID:             id,
			Comprador:      comprador,
			Vendedor:       producto.Vendedor,
			ProductoID:     producto.ID,
			Cantidad:       cantidad,
			PrecioUnitario: producto.Precio,
			Estado:         entity.EstadoPendiente,
			CreatedAt:      ahora,
			UpdatedAt:      ahora,
		}); err != nil {
			return err
		}
		if err := retener(r.Custodia, id, monto, ahora); err != nil {
			return err
		}
		ordenID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ordenID, nil
}

// MarcarEnviado transiciona Pendiente→Enviado. Solo el vendedor de la orden.
func (uc *OrdenesUseCase) MarcarEnviado(ctx context.Context, vendedor string, ordenID uint32) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		orden, err := r.Ordenes.Get(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrOrderNotFound
		}
		if orden.Vendedor != vendedor {
			return domain.ErrNotPermitted
		}
		if orden.Estado != entity.EstadoPendiente {
			return domain.ErrInvalidState
		}
		orden.Estado = entity.EstadoEnviado
		orden.UpdatedAt = time.Now()
		return r.Ordenes.Put(orden)
	})
}

// MarcarRecibido transiciona Enviado→Recibido y, en el mismo paso atómico,
// libera el monto completo en custodia hacia el vendedor. Este es el único
// camino por el que fondos salen de custodia hacia el vendedor.
func (uc *OrdenesUseCase) MarcarRecibido(ctx context.Context, comprador string, ordenID uint32) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		orden, err := r.Ordenes.Get(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrOrderNotFound
		}
		if orden.Comprador != comprador {
			return domain.ErrNotPermitted
		}
		if orden.Estado != entity.EstadoEnviado {
			return domain.ErrInvalidState
		}
		ahora := time.Now()
		orden.Estado = entity.EstadoRecibido
		orden.CancelacionPedidaPor = ""
		orden.UpdatedAt = ahora
		if err := r.Ordenes.Put(orden); err != nil {
			return err
		}
		_, err = liberar(r.Custodia, orden.ID, orden.Vendedor, ahora)
		return err
	})
}

// ObtenerOrden devuelve la orden solo a sus partes: el historial de órdenes
// es sensible y ninguna operación lo expone a terceros.
func (uc *OrdenesUseCase) ObtenerOrden(caller string, ordenID uint32) (*entity.Orden, error) {
	orden, err := uc.ordenes.Get(ordenID)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !orden.EsParte(caller) {
		return nil, domain.ErrNotPermitted
	}
	return orden, nil
}

// ListarPropias devuelve las órdenes del caller como comprador. No existe
// variante parametrizada: es un límite de privacidad deliberado.
func (uc *OrdenesUseCase) ListarPropias(caller string) ([]*entity.Orden, error) {
	return uc.ordenes.ListByComprador(caller)
}

// FondosRetenidos devuelve el monto actualmente en custodia de la orden.
// Solo para sus partes.
func (uc *OrdenesUseCase) FondosRetenidos(caller string, ordenID uint32) (uint64, error) {
	orden, err := uc.ordenes.Get(ordenID)
	if err != nil {
		return 0, err
	}
	if orden == nil {
		return 0, domain.ErrOrderNotFound
	}
	if !orden.EsParte(caller) {
		return 0, domain.ErrNotPermitted
	}
	c, err := uc.custodia.Get(ordenID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, nil
	}
	return c.Monto, nil
}

// Saldo devuelve el saldo liquidado de la cuenta (fondos ya liberados de
// custodia a su favor).
func (uc *OrdenesUseCase) Saldo(cuenta string) (uint64, error) {
	return uc.custodia.Saldo(cuenta)
}
