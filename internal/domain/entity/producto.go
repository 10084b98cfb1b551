package entity

import "time"

// Límites de largo para los textos de un producto.
const (
	MaxNombreProducto      = 64
	MaxDescripcionProducto = 256
	MaxCategoriaProducto   = 32
)

// Producto representa una publicación del catálogo. El identificador es
// secuencial (u32, base 1, nunca reusado). Precio, nombre y descripción son
// inmutables después de la publicación; solo el stock muta (baja al comprar,
// se restaura al cancelar). Un producto con stock cero sigue siendo
// consultable: nunca se elimina.
type Producto struct {
	ID          uint32
	Vendedor    string
	Nombre      string
	Descripcion string
	Categoria   string // normalizada NFC al publicar
	Precio      uint64 // unidades mínimas de moneda, siempre > 0
	Stock       uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
