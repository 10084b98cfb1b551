package market

import (
	"context"

	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// Repos agrupa los repositorios del ledger atados a una misma transacción.
type Repos struct {
	Usuarios   repository.UsuarioRepository
	Productos  repository.ProductoRepository
	Ordenes    repository.OrdenRepository
	Custodia   repository.CustodiaRepository
	Reputacion repository.ReputacionRepository
}

// TxRunner ejecuta fn contra repositorios atados a una transacción y
// garantiza todo-o-nada: si fn devuelve error, ninguna escritura previa de la
// llamada queda visible. Toda mutación multi-campo del ledger (stock + orden
// + custodia) pasa por aquí.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
