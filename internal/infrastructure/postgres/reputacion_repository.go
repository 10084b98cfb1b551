package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

var _ repository.ReputacionRepository = (*ReputacionRepo)(nil)

// ReputacionRepo implementación del puerto ReputacionRepository sobre PostgreSQL.
// Se persisten los acumuladores (cantidad y suma por dirección); los promedios
// se derivan al leer.
type ReputacionRepo struct {
	q Querier
}

// NewReputacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReputacionRepository(q Querier) *ReputacionRepo {
	return &ReputacionRepo{q: q}
}

// Get obtiene la reputación de una cuenta. (nil, nil) si nunca fue calificada.
func (r *ReputacionRepo) Get(cuenta string) (*entity.Reputacion, error) {
	query := `
		SELECT cuenta, comprador_cantidad, comprador_suma, vendedor_cantidad, vendedor_suma, updated_at
		FROM reputaciones WHERE cuenta = $1`
	var rep entity.Reputacion
	err := r.q.QueryRow(context.Background(), query, cuenta).Scan(
		&rep.Cuenta,
		&rep.ComoComprador.Cantidad, &rep.ComoComprador.Suma,
		&rep.ComoVendedor.Cantidad, &rep.ComoVendedor.Suma,
		&rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reputacion: %w", err)
	}
	return &rep, nil
}

// Put inserta o actualiza la reputación de una cuenta.
func (r *ReputacionRepo) Put(reputacion *entity.Reputacion) error {
	query := `
		INSERT INTO reputaciones (cuenta, comprador_cantidad, comprador_suma, vendedor_cantidad, vendedor_suma, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cuenta)
		DO UPDATE SET comprador_cantidad = EXCLUDED.comprador_cantidad,
		              comprador_suma = EXCLUDED.comprador_suma,
		              vendedor_cantidad = EXCLUDED.vendedor_cantidad,
		              vendedor_suma = EXCLUDED.vendedor_suma,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		reputacion.Cuenta,
		reputacion.ComoComprador.Cantidad, reputacion.ComoComprador.Suma,
		reputacion.ComoVendedor.Cantidad, reputacion.ComoVendedor.Suma,
		reputacion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert reputacion: %w", err)
	}
	return nil
}

// List devuelve todas las reputaciones en orden ascendente de cuenta.
func (r *ReputacionRepo) List() ([]*entity.Reputacion, error) {
	query := `
		SELECT cuenta, comprador_cantidad, comprador_suma, vendedor_cantidad, vendedor_suma, updated_at
		FROM reputaciones ORDER BY cuenta`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reputaciones: %w", err)
	}
	defer rows.Close()

	var reputaciones []*entity.Reputacion
	for rows.Next() {
		var rep entity.Reputacion
		if err := rows.Scan(
			&rep.Cuenta,
			&rep.ComoComprador.Cantidad, &rep.ComoComprador.Suma,
			&rep.ComoVendedor.Cantidad, &rep.ComoVendedor.Suma,
			&rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reputacion: %w", err)
		}
		reputaciones = append(reputaciones, &rep)
	}
	return reputaciones, rows.Err()
}
