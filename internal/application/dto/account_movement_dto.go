package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para registrar un movimiento de cuenta corriente.
// Amount es el delta con signo: sale > 0, payment < 0, adjustment != 0.
type CreateMovementRequest struct {
	CustomerID  string          `json:"customerId" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" validate:"required,oneof=sale payment adjustment"`
	Code        *string         `json:"code"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// MovementFilterQuery filtros de GET /account-movements.
type MovementFilterQuery struct {
	CustomerID string `query:"customerId"`
	StartDate  string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Type       string `query:"type" validate:"omitempty,oneof=sale payment adjustment"`
}

// UpdateMovementRequest campos mutables de un movimiento.
type UpdateMovementRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Code        *string          `json:"code"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount"`
}

// MovementResponse salida de un movimiento. Code se omite cuando no hay código.
type MovementResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Code         *string         `json:"code,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
	Type         string          `json:"type"`
	UserID       string          `json:"userId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CustomerAccountResponse vista completa de la cuenta corriente de un cliente.
type CustomerAccountResponse struct {
	Customer       CustomerResponse    `json:"customer"`
	Movements      []*MovementResponse `json:"movements"`
	CurrentBalance decimal.Decimal     `json:"currentBalance"`
	TotalSales     decimal.Decimal     `json:"totalSales"`
	TotalPayments  decimal.Decimal     `json:"totalPayments"`
}

// BalanceResponse saldo actual de un cliente.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ImportMovementItem movimiento ya calculado por la fuente; Balance se guarda tal cual.
type ImportMovementItem struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"required"`
	Code        *string         `json:"code"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Type        string          `json:"type" validate:"required,oneof=sale payment adjustment"`
}

// ImportMovementsRequest entrada de POST /account-movements/import.
type ImportMovementsRequest struct {
	CustomerID string               `json:"customerId" validate:"required"`
	Movements  []ImportMovementItem `json:"movements" validate:"required,dive"`
}

// ImportRawRow fila de planilla: precio > 0 es venta, si no pago. Saldo se guarda tal cual.
type ImportRawRow struct {
	Fecha       string          `json:"fecha" validate:"required,datetime=2006-01-02"`
	Descripcion string          `json:"descripcion"`
	Codigo      *string         `json:"codigo"`
	Precio      decimal.Decimal `json:"precio"`
	Saldo       decimal.Decimal `json:"saldo"`
}

// ImportCustomerDataRequest entrada de POST /account-movements/import-excel.
type ImportCustomerDataRequest struct {
	CustomerName string         `json:"customerName" validate:"required,max=200"`
	Movements    []ImportRawRow `json:"movements" validate:"required,dive"`
}

// ImportCustomerDataResponse cliente resuelto (o creado) y movimientos importados.
type ImportCustomerDataResponse struct {
	Customer  CustomerResponse    `json:"customer"`
	Movements []*MovementResponse `json:"movements"`
}

// RecalculateResponse resultado de recalcular saldos.
type RecalculateResponse struct {
	Updated        int             `json:"updated"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
