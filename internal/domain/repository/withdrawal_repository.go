package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// WithdrawalFilter filtros de listado de retiros. UserID es obligatorio.
type WithdrawalFilter struct {
	UserID    string
	StartDate string
	EndDate   string
	Reason    string
}

// WithdrawalRepository define el puerto de persistencia para Withdrawal.
type WithdrawalRepository interface {
	Create(ctx context.Context, w *entity.Withdrawal) error
	GetByID(ctx context.Context, id string) (*entity.Withdrawal, error)
	// List devuelve los retiros ordenados por (date, created_at) descendente.
	List(ctx context.Context, f WithdrawalFilter) ([]*entity.Withdrawal, error)
	Update(ctx context.Context, w *entity.Withdrawal) error
	Delete(ctx context.Context, id string) error
}
