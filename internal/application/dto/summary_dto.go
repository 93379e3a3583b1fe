package dto

import "github.com/shopspring/decimal"

// DailySummary totales de caja de un día.
// TotalNet = TotalCash + TotalDigital - TotalCommissions; FinalBalance = TotalNet - TotalWithdrawals.
type DailySummary struct {
	Date             string          `json:"date"`
	TotalCash        decimal.Decimal `json:"totalCash"`
	TotalDigital     decimal.Decimal `json:"totalDigital"`
	TotalCommissions decimal.Decimal `json:"totalCommissions"`
	TotalNet         decimal.Decimal `json:"totalNet"`
	SalesCount       int             `json:"salesCount"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	WithdrawalsCount int             `json:"withdrawalsCount"`
	FinalBalance     decimal.Decimal `json:"finalBalance"`
}

// DailyClosure cierre de caja: resumen más el detalle del día.
type DailyClosure struct {
	Date        string                `json:"date"`
	Business    *BusinessResponse     `json:"business,omitempty"`
	Sales       []*SaleResponse       `json:"sales"`
	Withdrawals []*WithdrawalResponse `json:"withdrawals"`
	Summary     DailySummary          `json:"summary"`
}
