package entity

import "time"

// Roles válidos dentro del mercado.
const (
	RolComprador Rol = "comprador"
	RolVendedor  Rol = "vendedor"
	RolAmbos     Rol = "ambos"
)

// Rol determina qué operaciones puede iniciar una cuenta. Ambos es la unión
// de las capacidades de Comprador y Vendedor.
type Rol string

// Valido reporta si el rol es uno de los tres conocidos.
func (r Rol) Valido() bool {
	return r == RolComprador || r == RolVendedor || r == RolAmbos
}

// PuedeComprar reporta si el rol habilita operaciones de comprador.
func (r Rol) PuedeComprar() bool { return r == RolComprador || r == RolAmbos }

// PuedeVender reporta si el rol habilita operaciones de vendedor.
func (r Rol) PuedeVender() bool { return r == RolVendedor || r == RolAmbos }

// Usuario es el registro de rol de una cuenta en el mercado. A lo sumo un
// registro por cuenta; se crea con el registro inicial y solo lo muta el
// cambio de rol explícito. Nunca se elimina.
type Usuario struct {
	Cuenta    string
	Rol       Rol
	CreatedAt time.Time
	UpdatedAt time.Time
}
