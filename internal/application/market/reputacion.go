package market

import (
	"context"
	"time"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// ReputacionUseCase registra calificaciones post-entrega: el comprador
// califica al vendedor y viceversa, a lo sumo una vez por orden y dirección,
// solo para órdenes que llegaron a Recibido. Lee del ledger de órdenes pero
// nunca lo transiciona.
type ReputacionUseCase struct {
	txRunner   TxRunner
	reputacion repository.ReputacionRepository
}

// NewReputacionUseCase construye el caso de uso.
func NewReputacionUseCase(txRunner TxRunner, reputacion repository.ReputacionRepository) *ReputacionUseCase {
	return &ReputacionUseCase{txRunner: txRunner, reputacion: reputacion}
}

// Calificar acredita puntos (1..5) a la contraparte de la orden. La dirección
// la decide el caller: comprador → califica al vendedor, vendedor → al
// comprador.
func (uc *ReputacionUseCase) Calificar(ctx context.Context, caller string, ordenID uint32, puntos uint8) error {
	if puntos < entity.PuntajeMinimo || puntos > entity.PuntajeMaximo {
		return domain.ErrInvalidParam
	}
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
		if orden.Estado != entity.EstadoRecibido {
			return domain.ErrInvalidState
		}

		var calificado string
		switch caller {
		case orden.Comprador:
			if orden.CalificadaPorComprador {
				return domain.ErrAlreadyRated
			}
			orden.CalificadaPorComprador = true
			calificado = orden.Vendedor
		case orden.Vendedor:
			if orden.CalificadaPorVendedor {
				return domain.ErrAlreadyRated
			}
			orden.CalificadaPorVendedor = true
			calificado = orden.Comprador
		}

		ahora := time.Now()
		orden.UpdatedAt = ahora
		if err := r.Ordenes.Put(orden); err != nil {
			return err
		}

		rep, err := r.Reputacion.Get(calificado)
		if err != nil {
			return err
		}
		if rep == nil {
			rep = &entity.Reputacion{Cuenta: calificado}
		}
		if caller == orden.Comprador {
			rep.ComoVendedor.Agregar(puntos)
		} else {
			rep.ComoComprador.Agregar(puntos)
		}
		rep.UpdatedAt = ahora
		return r.Reputacion.Put(rep)
	})
}

// ObtenerReputacion devuelve los acumuladores de la cuenta, o nil si nunca
// fue calificada.
func (uc *ReputacionUseCase) ObtenerReputacion(cuenta string) (*entity.Reputacion, error) {
	return uc.reputacion.Get(cuenta)
}
