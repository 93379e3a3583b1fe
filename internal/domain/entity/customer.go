package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente con cuenta corriente (fiado) de un usuario.
// El nombre de la cuenta se copia en cada movimiento al momento de crearlo.
type Customer struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	Phone       string
	Address     string
	TaxID       string // CUIT/DNI
	CreditLimit *decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
