package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Email       string           `json:"email" validate:"omitempty,email"`
	Phone       string           `json:"phone" validate:"omitempty,max=50"`
	Address     string           `json:"address" validate:"omitempty,max=300"`
	TaxID       string           `json:"taxId" validate:"omitempty,max=30"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
	Notes       string           `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateCustomerRequest actualización parcial; los campos nil no cambian.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Phone       *string          `json:"phone" validate:"omitempty,max=50"`
	Address     *string          `json:"address" validate:"omitempty,max=300"`
	TaxID       *string          `json:"taxId" validate:"omitempty,max=30"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Address     string           `json:"address,omitempty"`
	TaxID       string           `json:"taxId,omitempty"`
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	UserID      string           `json:"userId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CustomerBalanceResponse cliente con su saldo actual y últimos movimientos.
type CustomerBalanceResponse struct {
	Customer        CustomerResponse `json:"customer"`
	Balance         decimal.Decimal  `json:"balance"`
	LastSaleDate    string           `json:"lastSaleDate,omitempty"`
	LastPaymentDate string           `json:"lastPaymentDate,omitempty"`
}
