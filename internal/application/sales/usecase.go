package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
)

// UseCase ventas de mostrador: efectivo o digital, con comisión según medio de pago.
type UseCase struct {
	repo        repository.SaleRepository
	commissions CommissionCalculator
	clock       *clock.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SaleRepository, commissions CommissionCalculator, clk *clock.Clock) *UseCase {
	return &UseCase{repo: repo, commissions: commissions, clock: clk}
}

// Create registra una venta. Efectivo va a cashAmount y cualquier otro medio a digitalAmount.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = uc.clock.Today()
	} else if !clock.ValidDate(date) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.clock.Now()
	s := &entity.Sale{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.price(ctx, s, in.Amount, in.PaymentMethod, in.CardBrand, in.Installments); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	return dto.FromSale(s), nil
}

// List devuelve las ventas del usuario, más recientes primero.
func (uc *UseCase) List(ctx context.Context, userID string, q dto.SaleFilterQuery) ([]*dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx, repository.SaleFilter{
		UserID:        userID,
		StartDate:     q.StartDate,
		EndDate:       q.EndDate,
		PaymentMethod: q.PaymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	return dto.FromSales(list), nil
}

// GetByID devuelve ErrNotFound si no existe o pertenece a otro usuario.
func (uc *UseCase) GetByID(ctx context.Context, id, userID string) (*dto.SaleResponse, error) {
	s, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromSale(s), nil
}

// Update modifica la venta. Si cambia el monto o el medio de pago se recalculan
// los importes y la comisión.
func (uc *UseCase) Update(ctx context.Context, id, userID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	s, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Description = description
	}
	if in.Date != nil {
		if !clock.ValidDate(*in.Date) {
			return nil, domain.ErrInvalidInput
		}
		s.Date = *in.Date
	}
	if in.Amount != nil || in.PaymentMethod != nil || in.CardBrand != nil || in.Installments != nil {
		amount := s.Gross()
		if in.Amount != nil {
			amount = *in.Amount
		}
		method := s.PaymentMethod
		if in.PaymentMethod != nil {
			method = *in.PaymentMethod
		}
		brand, installments := s.CardBrand, s.Installments
		if in.CardBrand != nil {
			brand = in.CardBrand
		}
		if in.Installments != nil {
			installments = in.Installments
		}
		if err := uc.price(ctx, s, amount, method, brand, installments); err != nil {
			return nil, err
		}
	}
	s.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("actualizar venta: %w", err)
	}
	return dto.FromSale(s), nil
}

// Delete elimina la venta.
func (uc *UseCase) Delete(ctx context.Context, id, userID string) error {
	s, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.ID); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	return nil
}

// price valida medio de pago y monto, y completa importes y comisión de s.
func (uc *UseCase) price(ctx context.Context, s *entity.Sale, amount decimal.Decimal, method string, brand *string, installments *int) error {
	if !amount.IsPositive() || !entity.IsValidPaymentMethod(method) {
		return domain.ErrInvalidInput
	}
	if method == entity.PaymentMethodCredit {
		if brand == nil || installments == nil || !entity.IsValidCardBrand(*brand) || !entity.IsValidInstallments(*installments) {
			return domain.ErrInvalidInput
		}
	} else {
		// marca y cuotas solo aplican a tarjeta_credito
		brand, installments = nil, nil
	}

	s.PaymentMethod = method
	s.CardBrand = brand
	s.Installments = installments
	s.CashAmount, s.DigitalAmount = decimal.Zero, decimal.Zero
	if method == entity.PaymentMethodCash {
		s.CashAmount = amount
	} else {
		s.DigitalAmount = amount
	}
	// la venta guarda la comisión en centavos
	s.CommissionAmount = uc.commissions.Calculate(ctx, s.UserID, method, amount, brand, installments).Round(2)
	return nil
}

func (uc *UseCase) getOwned(ctx context.Context, id, userID string) (*entity.Sale, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if s == nil || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
