package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Puntajes válidos de una calificación.
const (
	PuntajeMinimo = 1
	PuntajeMaximo = 5
)

// Acumulado es el acumulador de calificaciones recibidas en una dirección
// (como comprador o como vendedor): cantidad y suma de puntajes 1..5.
type Acumulado struct {
	Cantidad uint32
	Suma     uint64
}

// Agregar suma un puntaje al acumulador.
func (a *Acumulado) Agregar(puntos uint8) {
	a.Cantidad++
	a.Suma += uint64(puntos)
}

// Promedio devuelve el promedio con dos decimales. Cero si no hay calificaciones.
func (a Acumulado) Promedio() decimal.Decimal {
	if a.Cantidad == 0 {
		return decimal.Zero
	}
	return decimal.NewFromUint64(a.Suma).
		Div(decimal.NewFromInt(int64(a.Cantidad))).
		Round(2)
}

// Reputacion agrupa las calificaciones recibidas por una cuenta en ambas
// direcciones. Solo órdenes que llegaron a Recibido son calificables, a lo
// sumo una vez por orden y por dirección.
type Reputacion struct {
	Cuenta        string
	ComoComprador Acumulado
	ComoVendedor  Acumulado
	UpdatedAt     time.Time
}
