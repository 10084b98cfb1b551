package repository

import "github.com/agoramarket/agora-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
// NextID asigna el siguiente identificador secuencial (base 1, monótono,
// nunca reusado) y devuelve domain.ErrIDOverflow al agotarse el rango u32.
type ProductoRepository interface {
	NextID() (uint32, error)
	Get(id uint32) (*entity.Producto, error)
	Put(producto *entity.Producto) error
	// ListByVendedor devuelve los productos del vendedor en orden ascendente
	// de identificador; secuencia vacía si no tiene.
	ListByVendedor(cuenta string) ([]*entity.Producto, error)
	List() ([]*entity.Producto, error)
}
