// Package summary contiene los reportes de caja: resumen diario, por rango, por mes y cierre.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
)

// UseCase agrega ventas y retiros por día. Solo lectura.
type UseCase struct {
	sales        repository.SaleRepository
	withdrawals  repository.WithdrawalRepository
	business     repository.BusinessConfigRepository
	maxRangeDays int
}

// NewUseCase construye el caso de uso. maxRangeDays limita el largo de Range.
func NewUseCase(
	sales repository.SaleRepository,
	withdrawals repository.WithdrawalRepository,
	business repository.BusinessConfigRepository,
	maxRangeDays int,
) *UseCase {
	return &UseCase{sales: sales, withdrawals: withdrawals, business: business, maxRangeDays: maxRangeDays}
}

// Daily resumen de un día.
func (uc *UseCase) Daily(ctx context.Context, date, userID string) (*dto.DailySummary, error) {
	if !clock.ValidDate(date) {
		return nil, domain.ErrInvalidInput
	}
	sales, withdrawals, err := uc.fetch(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}
	s := Aggregate(date, sales, withdrawals)
	return &s, nil
}

// Range un resumen por día entre start y end inclusive; los días sin actividad van en cero.
func (uc *UseCase) Range(ctx context.Context, start, end, userID string) ([]dto.DailySummary, error) {
	from, err := time.Parse(clock.DateLayout, start)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse(clock.DateLayout, end)
	if err != nil || to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > uc.maxRangeDays {
		return nil, domain.ErrInvalidInput
	}

	sales, withdrawals, err := uc.fetch(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	// Una sola lectura por colección; se reparte por día en memoria.
	salesByDay := make(map[string][]*entity.Sale)
	for _, s := range sales {
		salesByDay[s.Date] = append(salesByDay[s.Date], s)
	}
	wByDay := make(map[string][]*entity.Withdrawal)
	for _, w := range withdrawals {
		wByDay[w.Date] = append(wByDay[w.Date], w)
	}

	out := make([]dto.DailySummary, 0, days)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(clock.DateLayout)
		out = append(out, Aggregate(key, salesByDay[key], wByDay[key]))
	}
	return out, nil
}

// Month resumen diario de todo el mes.
func (uc *UseCase) Month(ctx context.Context, year, month int, userID string) ([]dto.DailySummary, error) {
	if year < 1900 || month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return uc.Range(ctx, first.Format(clock.DateLayout), last.Format(clock.DateLayout), userID)
}

// Closure cierre de caja del día: datos del negocio, detalle y resumen.
func (uc *UseCase) Closure(ctx context.Context, date, userID string) (*dto.DailyClosure, error) {
	if !clock.ValidDate(date) {
		return nil, domain.ErrInvalidInput
	}

	var (
		sales       []*entity.Sale
		withdrawals []*entity.Withdrawal
		business    *entity.BusinessConfig
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, withdrawals, err = uc.fetch(gctx, userID, date, date)
		return err
	})
	g.Go(func() error {
		var err error
		business, err = uc.business.GetByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("cierre: negocio: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DailyClosure{
		Date:        date,
		Sales:       dto.FromSales(sales),
		Withdrawals: dto.FromWithdrawals(withdrawals),
		Summary:     Aggregate(date, sales, withdrawals),
	}
	if business != nil {
		out.Business = dto.FromBusiness(business)
	}
	return out, nil
}

// fetch lee ventas y retiros del rango en paralelo.
func (uc *UseCase) fetch(ctx context.Context, userID, start, end string) ([]*entity.Sale, []*entity.Withdrawal, error) {
	var (
		sales       []*entity.Sale
		withdrawals []*entity.Withdrawal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = uc.sales.List(gctx, repository.SaleFilter{UserID: userID, StartDate: start, EndDate: end})
		if err != nil {
			return fmt.Errorf("resumen: ventas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		withdrawals, err = uc.withdrawals.List(gctx, repository.WithdrawalFilter{UserID: userID, StartDate: start, EndDate: end})
		if err != nil {
			return fmt.Errorf("resumen: retiros: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sales, withdrawals, nil
}

// Aggregate calcula los totales de un día:
// totalNet = efectivo + digital - comisiones; finalBalance = totalNet - retiros.
func Aggregate(date string, sales []*entity.Sale, withdrawals []*entity.Withdrawal) dto.DailySummary {
	s := dto.DailySummary{
		Date:             date,
		TotalCash:        decimal.Zero,
		TotalDigital:     decimal.Zero,
		TotalCommissions: decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		SalesCount:       len(sales),
		WithdrawalsCount: len(withdrawals),
	}
	for _, sale := range sales {
		s.TotalCash = s.TotalCash.Add(sale.CashAmount)
		s.TotalDigital = s.TotalDigital.Add(sale.DigitalAmount)
		s.TotalCommissions = s.TotalCommissions.Add(sale.CommissionAmount)
	}
	for _, w := range withdrawals {
		s.TotalWithdrawals = s.TotalWithdrawals.Add(w.Amount)
	}
	s.TotalNet = s.TotalCash.Add(s.TotalDigital).Sub(s.TotalCommissions)
	s.FinalBalance = s.TotalNet.Sub(s.TotalWithdrawals)
	return s
}
