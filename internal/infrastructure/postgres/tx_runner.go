package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agoramarket/agora-api/internal/application/market"
)

// Ensure TxRunner implements market.TxRunner.
var _ market.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Las lecturas de la tx ven sus propias escrituras; nada
// se vuelve visible hasta el commit.
func (r *TxRunner) Run(ctx context.Context, fn func(repos market.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := market.Repos{
		Usuarios:   NewUsuarioRepository(tx),
		Productos:  NewProductoRepository(tx),
		Ordenes:    NewOrdenRepository(tx),
		Custodia:   NewCustodiaRepository(tx),
		Reputacion: NewReputacionRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
