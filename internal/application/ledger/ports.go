package ledger

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/repository"
)

// TxRunner ejecuta una mutación del libro de forma atómica, pasando repositorios atados a la transacción.
// Dos ejecuciones concurrentes sobre el mismo cliente nunca leen el mismo saldo previo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		movements repository.AccountMovementRepository,
	) error) error
}
