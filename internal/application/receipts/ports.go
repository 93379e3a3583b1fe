package receipts

import (
	"context"

	"github.com/jhoicas/caja-api/internal/application/dto"
)

// DocumentGenerator arma los PDF. La implementación vive en infrastructure/pdf.
type DocumentGenerator interface {
	SaleReceipt(ctx context.Context, sale *dto.SaleResponse, business *dto.BusinessResponse) ([]byte, error)
	DailyClosure(ctx context.Context, closure *dto.DailyClosure) ([]byte, error)
	CustomerStatement(ctx context.Context, account *dto.CustomerAccountResponse, business *dto.BusinessResponse) ([]byte, error)
}

// SaleReader lectura de una venta del usuario (sales.UseCase).
type SaleReader interface {
	GetByID(ctx context.Context, id, userID string) (*dto.SaleResponse, error)
}

// ClosureReader cierre de caja de un día (summary.UseCase).
type ClosureReader interface {
	Closure(ctx context.Context, date, userID string) (*dto.DailyClosure, error)
}

// AccountReader cuenta corriente de un cliente (ledger.UseCase).
type AccountReader interface {
	Account(ctx context.Context, customerID, userID string) (*dto.CustomerAccountResponse, error)
}
