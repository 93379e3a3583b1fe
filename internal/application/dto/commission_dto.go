package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionResponse salida de una fila de comisión.
type CommissionResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	PaymentMethod string           `json:"paymentMethod"`
	CardBrand     *string          `json:"cardBrand,omitempty"`
	Installments  *int             `json:"installments,omitempty"`
	Percentage    decimal.Decimal  `json:"percentage"`
	FixedAmount   *decimal.Decimal `json:"fixedAmount,omitempty"`
	IsActive      bool             `json:"isActive"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// UpdateCommissionRequest solo percentage, fixedAmount e isActive son editables.
type UpdateCommissionRequest struct {
	Percentage  *decimal.Decimal `json:"percentage"`
	FixedAmount *decimal.Decimal `json:"fixedAmount"`
	IsActive    *bool            `json:"isActive"`
}

// CalculateCommissionRequest entrada de POST /commissions/calculate.
type CalculateCommissionRequest struct {
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=efectivo transferencia qr tarjeta_debito tarjeta_credito"`
	Amount        decimal.Decimal `json:"amount"`
	CardBrand     *string         `json:"cardBrand" validate:"omitempty,oneof=visa mastercard naranja tuya"`
	Installments  *int            `json:"installments" validate:"omitempty,oneof=1 3 6 12"`
}

// CalculateCommissionResponse comisión y neto de una operación.
type CalculateCommissionResponse struct {
	Commission decimal.Decimal `json:"commission"`
	NetAmount  decimal.Decimal `json:"netAmount"`
}

// OrganizedCommissions estructura anidada para pantallas de configuración:
// un porcentaje por medio simple y marca -> cuotas -> porcentaje para crédito.
type OrganizedCommissions struct {
	Efectivo       decimal.Decimal                       `json:"efectivo"`
	Transferencia  decimal.Decimal                       `json:"transferencia"`
	QR             decimal.Decimal                       `json:"qr"`
	TarjetaDebito  decimal.Decimal                       `json:"tarjeta_debito"`
	TarjetaCredito map[string]map[string]decimal.Decimal `json:"tarjeta_credito"`
}
