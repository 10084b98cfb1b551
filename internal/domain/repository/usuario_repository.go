package repository

import "github.com/agoramarket/agora-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para el registro de
// roles. Get devuelve (nil, nil) si la cuenta no está registrada: la ausencia
// es un resultado válido, no un error.
type UsuarioRepository interface {
	Get(cuenta string) (*entity.Usuario, error)
	Put(usuario *entity.Usuario) error
	List() ([]*entity.Usuario, error)
}
