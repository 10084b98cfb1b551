package entity

import "time"

// Cuenta representa una identidad autenticable del host (colaborador de
// identidad). El handle (ID) es opaco para el ledger: el núcleo del mercado
// solo compara identidades, nunca las interpreta.
type Cuenta struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en plano después de persistir
	Nombre       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
