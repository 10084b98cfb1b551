package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

var _ repository.CuentaRepository = (*CuentaRepo)(nil)

// CuentaRepo implementación del puerto CuentaRepository sobre PostgreSQL.
type CuentaRepo struct {
	q Querier
}

// NewCuentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuentaRepository(q Querier) *CuentaRepo {
	return &CuentaRepo{q: q}
}

// Create persiste una nueva cuenta. Email único.
func (r *CuentaRepo) Create(cuenta *entity.Cuenta) error {
	query := `
		INSERT INTO cuentas (id, email, password_hash, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cuenta.ID, cuenta.Email, cuenta.PasswordHash, cuenta.Nombre,
		cuenta.CreatedAt, cuenta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por su handle.
func (r *CuentaRepo) GetByID(id string) (*entity.Cuenta, error) {
	return r.getBy("id", id)
}

// GetByEmail obtiene una cuenta por email.
func (r *CuentaRepo) GetByEmail(email string) (*entity.Cuenta, error) {
	return r.getBy("email", email)
}

func (r *CuentaRepo) getBy(column, value string) (*entity.Cuenta, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, nombre, created_at, updated_at
		FROM cuentas WHERE %s = $1`, column)
	var c entity.Cuenta
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.Email, &c.PasswordHash, &c.Nombre, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta: %w", err)
	}
	return &c, nil
}
