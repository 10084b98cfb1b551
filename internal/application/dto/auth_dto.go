package dto

import "time"

// RegisterRequest entrada para crear una cuenta.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CuentaResponse salida de una cuenta (sin hash).
type CuentaResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token emitido más la cuenta.
type LoginResponse struct {
	Token  string         `json:"token"`
	Cuenta CuentaResponse `json:"cuenta"`
}
