package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest entrada para registrar un retiro de caja.
type CreateWithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason" validate:"required,oneof=gastos_operativos pago_proveedores salarios servicios impuestos personal otros"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateWithdrawalRequest actualización parcial de un retiro.
type UpdateWithdrawalRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Reason      *string          `json:"reason" validate:"omitempty,oneof=gastos_operativos pago_proveedores salarios servicios impuestos personal otros"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// WithdrawalFilterQuery filtros de GET /withdrawals.
type WithdrawalFilterQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Reason    string `query:"reason" validate:"omitempty,oneof=gastos_operativos pago_proveedores salarios servicios impuestos personal otros"`
}

// WithdrawalResponse salida de un retiro.
type WithdrawalResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	UserID      string          `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
