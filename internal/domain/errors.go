package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables por
// el caller: ninguno implica un ledger corrupto.
var (
	// Registro de roles
	ErrAlreadyRegistered = errors.New("la cuenta ya está registrada en el mercado")
	ErrNotRegistered     = errors.New("la cuenta no está registrada en el mercado")

	// Permisos: rol incorrecto o parte incorrecta para la orden
	ErrNotPermitted = errors.New("operación no permitida para esta cuenta")
	ErrSelfPurchase = errors.New("un vendedor no puede comprar su propio producto")

	// Parámetros: cantidad/precio cero, largo de texto excedido, puntaje fuera de 1..5
	ErrInvalidParam = errors.New("parámetro inválido")

	// Pago adjunto distinto al monto de la orden
	ErrInsufficientPayment = errors.New("el pago adjunto es menor al monto de la orden")
	ErrExcessivePayment    = errors.New("el pago adjunto excede el monto de la orden")

	// Catálogo y stock
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockOverflow     = errors.New("la devolución de stock excede el máximo representable")

	// Órdenes y máquina de estados
	ErrOrderNotFound = errors.New("orden no encontrada")
	ErrInvalidState  = errors.New("estado de la orden inválido para esta transición")
	ErrAlreadyRated  = errors.New("la orden ya fue calificada en esta dirección")

	// Contadores de identificadores: se agotan explícitamente, nunca reusan
	ErrIDOverflow = errors.New("contador de identificadores agotado")

	// Cuentas / autenticación (colaborador de identidad)
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUserNotFound       = errors.New("cuenta no encontrada")
	ErrUnauthorized       = errors.New("no autorizado")
)
