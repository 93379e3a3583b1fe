package withdrawal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
)

// UseCase retiros de efectivo de la caja.
type UseCase struct {
	repo  repository.WithdrawalRepository
	clock *clock.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.WithdrawalRepository, clk *clock.Clock) *UseCase {
	return &UseCase{repo: repo, clock: clk}
}

// Create registra un retiro. amount > 0 y reason debe ser un motivo conocido.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateWithdrawalRequest) (*dto.WithdrawalResponse, error) {
	if !in.Amount.IsPositive() || !entity.IsValidWithdrawalReason(in.Reason) {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = uc.clock.Today()
	} else if !clock.ValidDate(date) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.clock.Now()
	w := &entity.Withdrawal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      in.Amount,
		Reason:      in.Reason,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("crear retiro: %w", err)
	}
	return dto.FromWithdrawal(w), nil
}

// List devuelve los retiros del usuario, más recientes primero.
func (uc *UseCase) List(ctx context.Context, userID string, q dto.WithdrawalFilterQuery) ([]*dto.WithdrawalResponse, error) {
	list, err := uc.repo.List(ctx, repository.WithdrawalFilter{
		UserID:    userID,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Reason:    q.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("listar retiros: %w", err)
	}
	return dto.FromWithdrawals(list), nil
}

// GetByID devuelve ErrNotFound si no existe o pertenece a otro usuario.
func (uc *UseCase) GetByID(ctx context.Context, id, userID string) (*dto.WithdrawalResponse, error) {
	w, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromWithdrawal(w), nil
}

// Update aplica una actualización parcial.
func (uc *UseCase) Update(ctx context.Context, id, userID string, in dto.UpdateWithdrawalRequest) (*dto.WithdrawalResponse, error) {
	w, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		w.Amount = *in.Amount
	}
	if in.Reason != nil {
		if !entity.IsValidWithdrawalReason(*in.Reason) {
			return nil, domain.ErrInvalidInput
		}
		w.Reason = *in.Reason
	}
	if in.Description != nil {
		w.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		if !clock.ValidDate(*in.Date) {
			return nil, domain.ErrInvalidInput
		}
		w.Date = *in.Date
	}
	w.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("actualizar retiro: %w", err)
	}
	return dto.FromWithdrawal(w), nil
}

// Delete elimina el retiro.
func (uc *UseCase) Delete(ctx context.Context, id, userID string) error {
	w, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, w.ID); err != nil {
		return fmt.Errorf("eliminar retiro: %w", err)
	}
	return nil
}

func (uc *UseCase) getOwned(ctx context.Context, id, userID string) (*entity.Withdrawal, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener retiro: %w", err)
	}
	if w == nil || w.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return w, nil
}
