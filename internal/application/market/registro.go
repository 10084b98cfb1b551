package market

import (
	"context"
	"time"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// RegistroUseCase administra el registro de roles: a lo sumo un registro por
// cuenta, mutado solo por el cambio de rol explícito.
type RegistroUseCase struct {
	txRunner TxRunner
	usuarios repository.UsuarioRepository
}

// NewRegistroUseCase construye el caso de uso.
func NewRegistroUseCase(txRunner TxRunner, usuarios repository.UsuarioRepository) *RegistroUseCase {
	return &RegistroUseCase{txRunner: txRunner, usuarios: usuarios}
}

// Registrar crea el registro de rol de la cuenta. Falla con ErrAlreadyRegistered
// si la cuenta ya tiene rol; no tiene otro efecto que la creación del registro.
func (uc *RegistroUseCase) Registrar(ctx context.Context, cuenta string, rol entity.Rol) error {
	if !rol.Valido() {
		return domain.ErrInvalidParam
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		existente, err := r.Usuarios.Get(cuenta)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrAlreadyRegistered
		}
		ahora := time.Now()
		return r.Usuarios.Put(&entity.Usuario{
			Cuenta:    cuenta,
			Rol:       rol,
			CreatedAt: ahora,
			UpdatedAt: ahora,
		})
	})
}

// ModificarRol sobrescribe el rol de la cuenta. El cambio de superficie de
// permisos rige de inmediato para las llamadas siguientes.
func (uc *RegistroUseCase) ModificarRol(ctx context.Context, cuenta string, rol entity.Rol) error {
	if !rol.Valido() {
		return domain.ErrInvalidParam
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		usuario, err := r.Usuarios.Get(cuenta)
		if err != nil {
			return err
		}
		if usuario == nil {
			return domain.ErrNotRegistered
		}
		usuario.Rol = rol
		usuario.UpdatedAt = time.Now()
		return r.Usuarios.Put(usuario)
	})
}

// ObtenerRol devuelve el rol de la cuenta, o nil si no está registrada: la
// ausencia es un resultado válido, no una falla.
func (uc *RegistroUseCase) ObtenerRol(cuenta string) (*entity.Rol, error) {
	usuario, err := uc.usuarios.Get(cuenta)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	rol := usuario.Rol
	return &rol, nil
}
