package repository

import "github.com/agoramarket/agora-api/internal/domain/entity"

// CuentaRepository define el puerto de persistencia para Cuenta (DIP).
// Los lookups devuelven (nil, nil) si la cuenta no existe.
type CuentaRepository interface {
	Create(cuenta *entity.Cuenta) error
	GetByID(id string) (*entity.Cuenta, error)
	GetByEmail(email string) (*entity.Cuenta, error)
}
