package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

// OrdenRepo implementación del puerto OrdenRepository sobre PostgreSQL.
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador del libro de órdenes. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

// NextID asigna el siguiente identificador secuencial de orden.
func (r *OrdenRepo) NextID() (uint32, error) {
	return nextID(r.q, contadorOrdenes)
}

// Get obtiene una orden por ID. (nil, nil) si no existe.
func (r *OrdenRepo) Get(id uint32) (*entity.Orden, error) {
	query := `
		SELECT id, comprador, vendedor, producto_id, cantidad, precio_unitario,
		       estado, cancelacion_pedida_por, calificada_por_comprador, calificada_por_vendedor,
		       created_at, updated_at
		FROM ordenes WHERE id = $1`
	var o entity.Orden
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Comprador, &o.Vendedor, &o.ProductoID, &o.Cantidad, &o.PrecioUnitario,
		&o.Estado, &o.CancelacionPedidaPor, &o.CalificadaPorComprador, &o.CalificadaPorVendedor,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &o, nil
}

// Put inserta o actualiza una orden.
func (r *OrdenRepo) Put(orden *entity.Orden) error {
	query := `
		INSERT INTO ordenes (id, comprador, vendedor, producto_id, cantidad, precio_unitario,
		                     estado, cancelacion_pedida_por, calificada_por_comprador, calificada_por_vendedor,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id)
		DO UPDATE SET estado = EXCLUDED.estado,
		              cancelacion_pedida_por = EXCLUDED.cancelacion_pedida_por,
		              calificada_por_comprador = EXCLUDED.calificada_por_comprador,
		              calificada_por_vendedor = EXCLUDED.calificada_por_vendedor,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.Comprador, orden.Vendedor, orden.ProductoID, orden.Cantidad,
		orden.PrecioUnitario, orden.Estado, orden.CancelacionPedidaPor,
		orden.CalificadaPorComprador, orden.CalificadaPorVendedor,
		orden.CreatedAt, orden.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert orden: %w", err)
	}
	return nil
}

// ListByComprador lista las órdenes de un comprador en orden ascendente de ID.
func (r *OrdenRepo) ListByComprador(cuenta string) ([]*entity.Orden, error) {
	query := `
		SELECT id, comprador, vendedor, producto_id, cantidad, precio_unitario,
		       estado, cancelacion_pedida_por, calificada_por_comprador, calificada_por_vendedor,
		       created_at, updated_at
		FROM ordenes WHERE comprador = $1 ORDER BY id`
	return r.list(query, cuenta)
}

// List devuelve todas las órdenes en orden ascendente de ID.
func (r *OrdenRepo) List() ([]*entity.Orden, error) {
	query := `
		SELECT id, comprador, vendedor, producto_id, cantidad, precio_unitario,
		       estado, cancelacion_pedida_por, calificada_por_comprador, calificada_por_vendedor,
		       created_at, updated_at
		FROM ordenes ORDER BY id`
	return r.list(query)
}

func (r *OrdenRepo) list(query string, args ...any) ([]*entity.Orden, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()

	var ordenes []*entity.Orden
	for rows.Next() {
		var o entity.Orden
		if err := rows.Scan(
			&o.ID, &o.Comprador, &o.Vendedor, &o.ProductoID, &o.Cantidad, &o.PrecioUnitario,
			&o.Estado, &o.CancelacionPedidaPor, &o.CalificadaPorComprador, &o.CalificadaPorVendedor,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		ordenes = append(ordenes, &o)
	}
	return ordenes, rows.Err()
}
