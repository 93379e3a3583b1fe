package sales

import (
	"context"

	"github.com/shopspring/decimal"
)

// CommissionCalculator calcula la comisión de una venta. No devuelve error: ante una
// falla la implementación debe devolver 0 para que la venta se registre igual.
type CommissionCalculator interface {
	Calculate(ctx context.Context, userID, paymentMethod string, amount decimal.Decimal, cardBrand *string, installments *int) decimal.Decimal
}
