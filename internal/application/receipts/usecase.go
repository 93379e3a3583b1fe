// Package receipts produce los comprobantes PDF: ticket de venta, cierre de caja y
// resumen de cuenta corriente.
package receipts

import (
	"context"
	"fmt"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

// UseCase junta los datos de cada comprobante y delega el armado en DocumentGenerator.
type UseCase struct {
	gen      DocumentGenerator
	sales    SaleReader
	closures ClosureReader
	accounts AccountReader
	business repository.BusinessConfigRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	gen DocumentGenerator,
	sales SaleReader,
	closures ClosureReader,
	accounts AccountReader,
	business repository.BusinessConfigRepository,
) *UseCase {
	return &UseCase{gen: gen, sales: sales, closures: closures, accounts: accounts, business: business}
}

// SaleReceipt ticket de una venta. ErrNotFound si la venta no es del usuario.
func (uc *UseCase) SaleReceipt(ctx context.Context, saleID, userID string) ([]byte, error) {
	sale, err := uc.sales.GetByID(ctx, saleID, userID)
	if err != nil {
		return nil, err
	}
	business, err := uc.header(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.gen.SaleReceipt(ctx, sale, business)
}

// DailyClosure PDF del cierre de caja del día.
func (uc *UseCase) DailyClosure(ctx context.Context, date, userID string) ([]byte, error) {
	closure, err := uc.closures.Closure(ctx, date, userID)
	if err != nil {
		return nil, err
	}
	return uc.gen.DailyClosure(ctx, closure)
}

// CustomerStatement resumen de cuenta corriente de un cliente.
func (uc *UseCase) CustomerStatement(ctx context.Context, customerID, userID string) ([]byte, error) {
	account, err := uc.accounts.Account(ctx, customerID, userID)
	if err != nil {
		return nil, err
	}
	business, err := uc.header(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.gen.CustomerStatement(ctx, account, business)
}

// header datos del negocio para el encabezado; nil si el usuario no los cargó.
func (uc *UseCase) header(ctx context.Context, userID string) (*dto.BusinessResponse, error) {
	b, err := uc.business.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("comprobante: negocio: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	return dto.FromBusiness(b), nil
}
