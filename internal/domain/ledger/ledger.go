package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// NormalizeCode devuelve nil para códigos ausentes o en blanco; si no, una copia
// del código tal como llegó. Un movimiento sin código no guarda "" sino la ausencia del campo.
func NormalizeCode(code *string) *string {
	if code == nil || strings.TrimSpace(*code) == "" {
		return nil
	}
	c := *code
	return &c
}

// ValidateSign exige el signo del monto según el tipo:
// sale > 0, payment < 0, adjustment != 0.
func ValidateSign(movementType string, amount decimal.Decimal) error {
	switch movementType {
	case entity.MovementTypeSale:
		if !amount.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypePayment:
		if !amount.IsNegative() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjustment:
		if amount.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// Newer indica si a va antes que b en el orden del libro: (date, createdAt, seq) descendente.
func Newer(a, b *entity.AccountMovement) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.Seq > b.Seq
}

// SortNewestFirst ordena in-place del más reciente al más antiguo.
func SortNewestFirst(ms []*entity.AccountMovement) {
	sort.SliceStable(ms, func(i, j int) bool { return Newer(ms[i], ms[j]) })
}

// CurrentBalance es el saldo del movimiento más reciente, o 0 si no hay movimientos.
// ms debe venir ordenado del más reciente al más antiguo.
func CurrentBalance(ms []*entity.AccountMovement) decimal.Decimal {
	if len(ms) == 0 {
		return decimal.Zero
	}
	return ms[0].Balance
}

// Totals suma ventas (sale con monto > 0) y pagos (|monto| de payment con monto < 0).
func Totals(ms []*entity.AccountMovement) (sales, payments decimal.Decimal) {
	sales, payments = decimal.Zero, decimal.Zero
	for _, m := range ms {
		switch {
		case m.Type == entity.MovementTypeSale && m.Amount.IsPositive():
			sales = sales.Add(m.Amount)
		case m.Type == entity.MovementTypePayment && m.Amount.IsNegative():
			payments = payments.Add(m.Amount.Abs())
		}
	}
	return sales, payments
}

// Recompute reescribe Balance como suma acumulada de Amount, recorriendo del más antiguo
// al más reciente. Devuelve solo los movimientos cuyo saldo cambió.
func Recompute(ms []*entity.AccountMovement) []*entity.AccountMovement {
	asc := make([]*entity.AccountMovement, len(ms))
	copy(asc, ms)
	sort.SliceStable(asc, func(i, j int) bool { return Newer(asc[j], asc[i]) })

	running := decimal.Zero
	var changed []*entity.AccountMovement
	for _, m := range asc {
		running = running.Add(m.Amount)
		if !m.Balance.Equal(running) {
			m.Balance = running
			changed = append(changed, m)
		}
	}
	return changed
}
