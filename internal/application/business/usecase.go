package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
)

// DefaultCurrency moneda asignada cuando no se indica.
const DefaultCurrency = "ARS"

// UseCase configuración del negocio (una por usuario).
type UseCase struct {
	repo            repository.BusinessConfigRepository
	clock           *clock.Clock
	defaultTimezone string
}

// NewUseCase construye el caso de uso. defaultTimezone se usa cuando el alta no trae zona horaria.
func NewUseCase(repo repository.BusinessConfigRepository, clk *clock.Clock, defaultTimezone string) *UseCase {
	return &UseCase{repo: repo, clock: clk, defaultTimezone: defaultTimezone}
}

// Get devuelve ErrNotFound si el usuario no configuró su negocio.
func (uc *UseCase) Get(ctx context.Context, userID string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("obtener negocio: %w", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromBusiness(b), nil
}

// Create da de alta la configuración. ErrDuplicate si ya existe.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = uc.defaultTimezone
	}
	now := uc.clock.Now()
	b := &entity.BusinessConfig{
		ID:           uuid.New().String(),
		UserID:       userID,
		BusinessName: name,
		OwnerName:    strings.TrimSpace(in.OwnerName),
		Address:      strings.TrimSpace(in.Address),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Website:      strings.TrimSpace(in.Website),
		Logo:         strings.TrimSpace(in.Logo),
		Description:  strings.TrimSpace(in.Description),
		Currency:     currency,
		Timezone:     tz,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("crear negocio: %w", err)
	}
	return dto.FromBusiness(b), nil
}

// Update actualización parcial. ErrNotFound si todavía no existe.
func (uc *UseCase) Update(ctx context.Context, userID string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("obtener negocio: %w", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.BusinessName != nil {
		name := strings.TrimSpace(*in.BusinessName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		b.BusinessName = name
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&b.OwnerName, in.OwnerName)
	set(&b.Address, in.Address)
	set(&b.Phone, in.Phone)
	set(&b.Email, in.Email)
	set(&b.Website, in.Website)
	set(&b.Logo, in.Logo)
	set(&b.Description, in.Description)
	if in.Currency != nil && strings.TrimSpace(*in.Currency) != "" {
		b.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
	}
	if in.Timezone != nil && strings.TrimSpace(*in.Timezone) != "" {
		b.Timezone = strings.TrimSpace(*in.Timezone)
	}
	b.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("actualizar negocio: %w", err)
	}
	return dto.FromBusiness(b), nil
}
