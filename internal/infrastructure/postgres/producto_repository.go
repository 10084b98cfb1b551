package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// NextID asigna el siguiente identificador secuencial de producto.
func (r *ProductoRepo) NextID() (uint32, error) {
	return nextID(r.q, contadorProductos)
}

// Get obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductoRepo) Get(id uint32) (*entity.Producto, error) {
	query := `
		SELECT id, vendedor, nombre, descripcion, categoria, precio, stock, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Vendedor, &p.Nombre, &p.Descripcion, &p.Categoria,
		&p.Precio, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Put inserta o actualiza un producto. El único campo que muta después de la
// publicación es el stock, pero el upsert completo mantiene simétrico el
// contrato con el backend en memoria.
func (r *ProductoRepo) Put(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, vendedor, nombre, descripcion, categoria, precio, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET stock = EXCLUDED.stock, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Vendedor, producto.Nombre, producto.Descripcion,
		producto.Categoria, producto.Precio, producto.Stock,
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert producto: %w", err)
	}
	return nil
}

// ListByVendedor lista los productos de un vendedor en orden ascendente de ID.
func (r *ProductoRepo) ListByVendedor(cuenta string) ([]*entity.Producto, error) {
	query := `
		SELECT id, vendedor, nombre, descripcion, categoria, precio, stock, created_at, updated_at
		FROM productos WHERE vendedor = $1 ORDER BY id`
	return r.list(query, cuenta)
}

// List devuelve el catálogo completo en orden ascendente de ID.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `
		SELECT id, vendedor, nombre, descripcion, categoria, precio, stock, created_at, updated_at
		FROM productos ORDER BY id`
	return r.list(query)
}

func (r *ProductoRepo) list(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Vendedor, &p.Nombre, &p.Descripcion, &p.Categoria,
			&p.Precio, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, &p)
	}
	return productos, rows.Err()
}
