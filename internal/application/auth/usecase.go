package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
	"github.com/agoramarket/agora-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase es el colaborador de identidad del host: crea cuentas y emite
// tokens. El ledger del mercado confía en la identidad que resulta de
// validar el token; no conoce emails ni contraseñas.
type AuthUseCase struct {
	cuentas repository.CuentaRepository
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cuentas repository.CuentaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{cuentas: cuentas, jwtCfg: jwtCfg}
}

// RegistrarCuenta crea una cuenta con handle uuid y password hasheada con
// bcrypt. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegistrarCuenta(in dto.RegisterRequest) (*dto.CuentaResponse, error) {
	existente, err := uc.cuentas.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	ahora := time.Now()
	cuenta := &entity.Cuenta{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		CreatedAt:    ahora,
		UpdatedAt:    ahora,
	}
	if err := uc.cuentas.Create(cuenta); err != nil {
		return nil, err
	}
	return toCuentaResponse(cuenta), nil
}

// Login verifica email/password y emite un JWT con la cuenta como subject.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	cuenta, err := uc.cuentas.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cuenta.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cuenta.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Cuenta: *toCuentaResponse(cuenta),
	}, nil
}

func toCuentaResponse(c *entity.Cuenta) *dto.CuentaResponse {
	if c == nil {
		return nil
	}
	return &dto.CuentaResponse{
		ID:        c.ID,
		Email:     c.Email,
		Nombre:    c.Nombre,
		CreatedAt: c.CreatedAt,
	}
}
