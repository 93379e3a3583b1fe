package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas. UserID es obligatorio.
type SaleFilter struct {
	UserID        string
	StartDate     string
	EndDate       string
	PaymentMethod string
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve las ventas ordenadas por (date, created_at) descendente.
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, error)
	Update(ctx context.Context, s *entity.Sale) error
	Delete(ctx context.Context, id string) error
}
