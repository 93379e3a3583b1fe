package memory

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/repository"
)

// LedgerTxRunner serializa las mutaciones del libro con un único mutex y
// deshace las escrituras si fn devuelve error.
type LedgerTxRunner struct {
	s *Store
}

// NewLedgerTxRunner construye el runner sobre el store.
func NewLedgerTxRunner(s *Store) *LedgerTxRunner {
	return &LedgerTxRunner{s: s}
}

// Run ejecuta fn con repositorios atados a un journal propio.
func (r *LedgerTxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	movements repository.AccountMovementRepository,
) error) error {
	r.s.ledgerMu.Lock()
	defer r.s.ledgerMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	j := &journal{}
	customers := &CustomerRepository{s: r.s, j: j}
	movements := &AccountMovementRepository{s: r.s, j: j}

	if err := fn(customers, movements); err != nil {
		j.rollback()
		return err
	}
	return nil
}
