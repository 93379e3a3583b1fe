package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de retiro de caja.
const (
	WithdrawalReasonOperating = "gastos_operativos"
	WithdrawalReasonSuppliers = "pago_proveedores"
	WithdrawalReasonSalaries  = "salarios"
	WithdrawalReasonServices  = "servicios"
	WithdrawalReasonTaxes     = "impuestos"
	WithdrawalReasonPersonal  = "personal"
	WithdrawalReasonOther     = "otros"
)

// WithdrawalReasons motivos válidos, en el orden en que se muestran.
var WithdrawalReasons = []string{
	WithdrawalReasonOperating, WithdrawalReasonSuppliers, WithdrawalReasonSalaries,
	WithdrawalReasonServices, WithdrawalReasonTaxes, WithdrawalReasonPersonal, WithdrawalReasonOther,
}

// Withdrawal retiro de efectivo de la caja.
type Withdrawal struct {
	ID          string
	UserID      string
	Amount      decimal.Decimal
	Reason      string
	Description string
	Date        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidWithdrawalReason indica si r es un motivo conocido.
func IsValidWithdrawalReason(r string) bool {
	for _, s := range WithdrawalReasons {
		if s == r {
			return true
		}
	}
	return false
}
