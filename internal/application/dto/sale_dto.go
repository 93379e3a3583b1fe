package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta de mostrador.
type CreateSaleRequest struct {
	Description   string          `json:"description" validate:"required,max=500"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=efectivo transferencia qr tarjeta_debito tarjeta_credito"`
	CardBrand     *string         `json:"cardBrand" validate:"omitempty,oneof=visa mastercard naranja tuya"`
	Installments  *int            `json:"installments" validate:"omitempty,oneof=1 3 6 12"`
	Date          string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateSaleRequest actualización parcial de una venta.
type UpdateSaleRequest struct {
	Description   *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"paymentMethod" validate:"omitempty,oneof=efectivo transferencia qr tarjeta_debito tarjeta_credito"`
	CardBrand     *string          `json:"cardBrand" validate:"omitempty,oneof=visa mastercard naranja tuya"`
	Installments  *int             `json:"installments" validate:"omitempty,oneof=1 3 6 12"`
	Date          *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// SaleFilterQuery filtros de GET /sales.
type SaleFilterQuery struct {
	StartDate     string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string `query:"paymentMethod" validate:"omitempty,oneof=efectivo transferencia qr tarjeta_debito tarjeta_credito"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	CashAmount       decimal.Decimal `json:"cashAmount"`
	DigitalAmount    decimal.Decimal `json:"digitalAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	PaymentMethod    string          `json:"paymentMethod"`
	CardBrand        *string         `json:"cardBrand,omitempty"`
	Installments     *int            `json:"installments,omitempty"`
	UserID           string          `json:"userId"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
