package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

var _ repository.CustodiaRepository = (*CustodiaRepo)(nil)

// CustodiaRepo implementación del puerto CustodiaRepository sobre PostgreSQL.
// Los registros de custodia viven en custodias; los saldos ya liberados, en
// saldos. Ambas tablas mutan solo dentro de transacciones del TxRunner.
type CustodiaRepo struct {
	q Querier
}

// NewCustodiaRepository construye el adaptador de fondos. Pasar pool o tx (Querier).
func NewCustodiaRepository(q Querier) *CustodiaRepo {
	return &CustodiaRepo{q: q}
}

// Get obtiene el registro de custodia de una orden. (nil, nil) si no existe.
func (r *CustodiaRepo) Get(ordenID uint32) (*entity.Custodia, error) {
	query := `
		SELECT orden_id, monto, updated_at
		FROM custodias WHERE orden_id = $1`
	var c entity.Custodia
	err := r.q.QueryRow(context.Background(), query, ordenID).Scan(
		&c.OrdenID, &c.Monto, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get custodia: %w", err)
	}
	return &c, nil
}

// Put inserta o actualiza el registro de custodia de una orden.
func (r *CustodiaRepo) Put(custodia *entity.Custodia) error {
	query := `
		INSERT INTO custodias (orden_id, monto, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (orden_id)
		DO UPDATE SET monto = EXCLUDED.monto, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		custodia.OrdenID, custodia.Monto, custodia.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert custodia: %w", err)
	}
	return nil
}

// TotalRetenido devuelve la suma de todos los fondos aún en custodia.
func (r *CustodiaRepo) TotalRetenido() (uint64, error) {
	var total uint64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(monto), 0) FROM custodias`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum custodias: %w", err)
	}
	return total, nil
}

// Saldo devuelve el saldo liquidado de una cuenta. Cero si nunca recibió fondos.
func (r *CustodiaRepo) Saldo(cuenta string) (uint64, error) {
	var monto uint64
	err := r.q.QueryRow(context.Background(),
		`SELECT monto FROM saldos WHERE cuenta = $1`, cuenta,
	).Scan(&monto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get saldo: %w", err)
	}
	return monto, nil
}

// AcreditarSaldo suma monto al saldo liquidado de la cuenta.
func (r *CustodiaRepo) AcreditarSaldo(cuenta string, monto uint64) error {
	query := `
		INSERT INTO saldos (cuenta, monto, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (cuenta)
		DO UPDATE SET monto = saldos.monto + EXCLUDED.monto, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, cuenta, monto)
	if err != nil {
		return fmt.Errorf("acreditar saldo: %w", err)
	}
	return nil
}
