package entity

import "time"

// Custodia es el registro de fondos retenidos de una orden. Se crea de forma
// atómica con la orden por el monto exacto de la compra y se consume a cero
// exactamente una vez: hacia el vendedor al confirmar la recepción, o de
// vuelta al comprador al aceptar la cancelación. Invariante: una orden en
// estado Recibido o Cancelada tiene Monto 0; cualquier otro estado retiene el
// monto original completo.
type Custodia struct {
	OrdenID   uint32
	Monto     uint64 // 0 = consumida
	UpdatedAt time.Time
}
