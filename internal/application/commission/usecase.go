package commission

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	domcommission "github.com/jhoicas/caja-api/internal/domain/commission"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

const percentageScale = 4

// UseCase motor de comisiones: configuración por medio de pago y cálculo por venta.
type UseCase struct {
	repo  repository.CommissionRepository
	clock *clock.Clock
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CommissionRepository, clk *clock.Clock, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, clock: clk, log: log.Named("commission")}
}

// List devuelve las configuraciones activas del usuario.
func (uc *UseCase) List(ctx context.Context, userID string) ([]*dto.CommissionResponse, error) {
	rows, err := uc.repo.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar comisiones: %w", err)
	}
	out := make([]*dto.CommissionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromCommission(r))
	}
	return out, nil
}

// CreateDefaults inserta en un único lote las 20 filas por defecto que falten.
// Las filas tienen ID determinista: repetir la operación no duplica ni pisa
// porcentajes o estados editados. Devuelve las filas activas resultantes.
func (uc *UseCase) CreateDefaults(ctx context.Context, userID string) ([]*dto.CommissionResponse, error) {
	if err := uc.provision(ctx, userID); err != nil {
		return nil, err
	}
	return uc.List(ctx, userID)
}

func (uc *UseCase) provision(ctx context.Context, userID string) error {
	rows := domcommission.Defaults(userID, uc.clock.Now())
	if err := uc.repo.InsertMissing(ctx, rows); err != nil {
		return fmt.Errorf("crear comisiones por defecto: %w", err)
	}
	uc.log.Info().Str("user_id", userID).Int("rows", len(rows)).Msg("comisiones por defecto provisionadas")
	return nil
}

// Update modifica percentage, fixedAmount y/o isActive.
// ErrNotFound si no existe, ErrForbidden si pertenece a otro usuario.
func (uc *UseCase) Update(ctx context.Context, id, userID string, in dto.UpdateCommissionRequest) (*dto.CommissionResponse, error) {
	if in.Percentage == nil && in.FixedAmount == nil && in.IsActive == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Percentage != nil && (in.Percentage.IsNegative() || in.Percentage.GreaterThan(hundred)) {
		return nil, domain.ErrInvalidInput
	}
	if in.FixedAmount != nil && in.FixedAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	// escalas de la tabla: porcentaje con 4 decimales, monto fijo en centavos
	if in.Percentage != nil && !in.Percentage.Equal(in.Percentage.Round(percentageScale)) {
		return nil, domain.ErrInvalidInput
	}
	if in.FixedAmount != nil && !in.FixedAmount.Equal(in.FixedAmount.Round(2)) {
		return nil, domain.ErrInvalidInput
	}

	row, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener comisión: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if row.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.Percentage != nil {
		row.Percentage = *in.Percentage
	}
	if in.FixedAmount != nil {
		fixed := *in.FixedAmount
		row.FixedAmount = &fixed
	}
	if in.IsActive != nil {
		row.IsActive = *in.IsActive
	}
	row.UpdatedAt = uc.clock.Now()

	if err := uc.repo.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("actualizar comisión: %w", err)
	}
	return dto.FromCommission(row), nil
}

// Calculate devuelve la comisión para amount. Nunca falla: ante cualquier error
// registra el problema y devuelve 0 para no bloquear la venta.
//
// Si el usuario no tiene una fila activa que coincida, el resultado sale de la tabla
// incorporada (sin monto fijo). Los valores por defecto se provisionan solo si el
// usuario todavía no tiene ninguna fila.
func (uc *UseCase) Calculate(ctx context.Context, userID, paymentMethod string, amount decimal.Decimal, cardBrand *string, installments *int) decimal.Decimal {
	lookup := repository.CommissionLookup{UserID: userID, PaymentMethod: paymentMethod}
	if paymentMethod == entity.PaymentMethodCredit && cardBrand != nil && installments != nil {
		lookup.CardBrand = cardBrand
		lookup.Installments = installments
	}

	row, err := uc.repo.FindActive(ctx, lookup)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("payment_method", paymentMethod).Msg("error calculando comisión")
		return decimal.Zero
	}
	if row != nil {
		return domcommission.Compute(amount, row.Percentage, row.FixedAmount)
	}

	count, err := uc.repo.CountByUser(ctx, userID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("error contando comisiones")
		return decimal.Zero
	}
	if count == 0 {
		if err := uc.provision(ctx, userID); err != nil {
			uc.log.Error().Err(err).Str("user_id", userID).Msg("error provisionando comisiones por defecto")
			return decimal.Zero
		}
	}
	pct, ok := domcommission.DefaultPercentage(paymentMethod, lookup.CardBrand, lookup.Installments)
	if !ok {
		return decimal.Zero
	}
	return domcommission.Compute(amount, pct, nil)
}

// Organized devuelve las configuraciones activas en forma anidada:
// un porcentaje por medio simple y marca -> cuotas -> porcentaje para crédito.
func (uc *UseCase) Organized(ctx context.Context, userID string) (*dto.OrganizedCommissions, error) {
	rows, err := uc.repo.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("organizar comisiones: %w", err)
	}

	out := &dto.OrganizedCommissions{
		Efectivo:       decimal.Zero,
		Transferencia:  decimal.Zero,
		QR:             decimal.Zero,
		TarjetaDebito:  decimal.Zero,
		TarjetaCredito: make(map[string]map[string]decimal.Decimal, len(entity.CardBrands)),
	}
	for _, b := range entity.CardBrands {
		out.TarjetaCredito[b] = map[string]decimal.Decimal{}
	}

	for _, r := range rows {
		switch r.PaymentMethod {
		case entity.PaymentMethodCash:
			out.Efectivo = r.Percentage
		case entity.PaymentMethodTransfer:
			out.Transferencia = r.Percentage
		case entity.PaymentMethodQR:
			out.QR = r.Percentage
		case entity.PaymentMethodDebit:
			out.TarjetaDebito = r.Percentage
		case entity.PaymentMethodCredit:
			if r.CardBrand == nil || r.Installments == nil {
				continue
			}
			byInst, ok := out.TarjetaCredito[*r.CardBrand]
			if !ok {
				continue
			}
			byInst[strconv.Itoa(*r.Installments)] = r.Percentage
		}
	}
	return out, nil
}
