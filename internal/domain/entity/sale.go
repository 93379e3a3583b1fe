package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de mostrador. CashAmount y DigitalAmount son excluyentes:
// efectivo va a CashAmount, cualquier otro medio a DigitalAmount.
type Sale struct {
	ID               string
	UserID           string
	Date             string
	Description      string
	CashAmount       decimal.Decimal
	DigitalAmount    decimal.Decimal
	CommissionAmount decimal.Decimal
	PaymentMethod    string
	CardBrand        *string
	Installments     *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Gross devuelve el monto bruto de la venta.
func (s *Sale) Gross() decimal.Decimal {
	return s.CashAmount.Add(s.DigitalAmount)
}

// Net devuelve el monto neto (bruto - comisión).
func (s *Sale) Net() decimal.Decimal {
	return s.Gross().Sub(s.CommissionAmount)
}
