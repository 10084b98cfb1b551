package repository

import "github.com/agoramarket/agora-api/internal/domain/entity"

// OrdenRepository define el puerto de persistencia para Orden. El contador de
// identificadores es independiente del de productos, con las mismas garantías
// de monotonía y desborde explícito.
type OrdenRepository interface {
	NextID() (uint32, error)
	Get(id uint32) (*entity.Orden, error)
	Put(orden *entity.Orden) error
	// ListByComprador devuelve las órdenes del comprador en orden ascendente
	// de identificador.
	ListByComprador(cuenta string) ([]*entity.Orden, error)
	List() ([]*entity.Orden, error)
}
