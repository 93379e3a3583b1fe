package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de cuenta corriente.
const (
	MovementTypeSale       = "sale"       // aumenta la deuda
	MovementTypePayment    = "payment"    // disminuye la deuda (monto negativo)
	MovementTypeAdjustment = "adjustment" // corrección manual, cualquier signo
)

// AccountMovement es una línea del libro de cuenta corriente de un cliente.
//
// Amount es el delta aplicado al saldo anterior; Balance es el saldo luego del
// movimiento. Date es un día calendario en formato YYYY-MM-DD.
type AccountMovement struct {
	ID           string
	CustomerID   string
	CustomerName string
	Date         string
	Description  string
	Code         *string // nil = sin código (distinto de "")
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	Type         string
	UserID       string
	Seq          int64 // orden de inserción, desempata (date, created_at)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeSale, MovementTypePayment, MovementTypeAdjustment:
		return true
	}
	return false
}
