package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*LedgerTxRunner)(nil)

// LedgerTxRunner ejecuta mutaciones del libro dentro de una transacción PostgreSQL.
// El caso de uso toma la fila del cliente con GetForUpdate, lo que serializa las
// escrituras concurrentes sobre un mismo cliente.
type LedgerTxRunner struct {
	pool *pgxpool.Pool
}

// NewLedgerTxRunner construye el runner con el pool.
func NewLedgerTxRunner(pool *pgxpool.Pool) *LedgerTxRunner {
	return &LedgerTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *LedgerTxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	movements repository.AccountMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx), NewAccountMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
