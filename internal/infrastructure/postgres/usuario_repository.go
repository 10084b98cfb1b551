package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Get obtiene el registro de rol de una cuenta. (nil, nil) si no está registrada.
func (r *UsuarioRepo) Get(cuenta string) (*entity.Usuario, error) {
	query := `
		SELECT cuenta, rol, created_at, updated_at
		FROM usuarios WHERE cuenta = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, cuenta).Scan(
		&u.Cuenta, &u.Rol, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Put inserta o actualiza el registro de rol.
func (r *UsuarioRepo) Put(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (cuenta, rol, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cuenta)
		DO UPDATE SET rol = EXCLUDED.rol, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		usuario.Cuenta, usuario.Rol, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert usuario: %w", err)
	}
	return nil
}

// List devuelve todos los registros de rol en orden ascendente de cuenta.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT cuenta, rol, created_at, updated_at
		FROM usuarios ORDER BY cuenta`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.Cuenta, &u.Rol, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		usuarios = append(usuarios, &u)
	}
	return usuarios, rows.Err()
}
