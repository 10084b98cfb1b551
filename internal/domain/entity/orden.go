package entity

import "time"

// Estados del ciclo de vida de una orden. Las únicas transiciones permitidas
// son Pendiente→Enviado→Recibido y Pendiente/Enviado→Cancelada (esta última
// solo vía el protocolo de cancelación mutua). Ninguna transición saltea un
// estado ni retrocede.
const (
	EstadoPendiente EstadoOrden = "pendiente"
	EstadoEnviado   EstadoOrden = "enviado"
	EstadoRecibido  EstadoOrden = "recibido"
	EstadoCancelada EstadoOrden = "cancelada"
)

// EstadoOrden es el estado actual de una orden dentro de la máquina de estados.
type EstadoOrden string

// Terminal reporta si el estado no admite más transiciones.
func (e EstadoOrden) Terminal() bool {
	return e == EstadoRecibido || e == EstadoCancelada
}

// Orden representa una compra. El vendedor y el precio unitario se copian del
// producto al momento de la compra, de modo que no hay campo derivado que
// pueda desincronizarse después. Las órdenes se retienen como historial:
// nunca se eliminan.
type Orden struct {
	ID             uint32
	Comprador      string
	Vendedor       string
	ProductoID     uint32
	Cantidad       uint32 // siempre > 0
	PrecioUnitario uint64 // capturado del producto al comprar

	Estado EstadoOrden

	// CancelacionPedidaPor registra qué parte solicitó la cancelación.
	// Vacío = sin solicitud pendiente. La resolución la decide la contraparte.
	CancelacionPedidaPor string

	// Calificaciones emitidas para esta orden (a lo sumo una por dirección).
	CalificadaPorComprador bool
	CalificadaPorVendedor  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Monto es el valor total de la orden (precio unitario × cantidad). El
// desborde se verifica al crear la orden, por lo que aquí el producto cabe
// siempre en uint64.
func (o *Orden) Monto() uint64 {
	return o.PrecioUnitario * uint64(o.Cantidad)
}

// EsParte reporta si la cuenta es el comprador o el vendedor de la orden.
func (o *Orden) EsParte(cuenta string) bool {
	return cuenta == o.Comprador || cuenta == o.Vendedor
}

// Contraparte devuelve la otra parte de la orden. Vacío si la cuenta no es parte.
func (o *Orden) Contraparte(cuenta string) string {
	switch cuenta {
	case o.Comprador:
		return o.Vendedor
	case o.Vendedor:
		return o.Comprador
	}
	return ""
}
