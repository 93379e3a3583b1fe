package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// CommissionLookup clave de búsqueda de una comisión activa.
// CardBrand/Installments solo acotan la búsqueda cuando vienen ambos.
type CommissionLookup struct {
	UserID        string
	PaymentMethod string
	CardBrand     *string
	Installments  *int
}

// CommissionRepository define el puerto de persistencia para CommissionConfig.
type CommissionRepository interface {
	// ListActive devuelve las filas activas del usuario.
	ListActive(ctx context.Context, userID string) ([]*entity.CommissionConfig, error)
	// FindActive devuelve la primera fila activa que coincide, o nil.
	FindActive(ctx context.Context, q CommissionLookup) (*entity.CommissionConfig, error)
	GetByID(ctx context.Context, id string) (*entity.CommissionConfig, error)
	Update(ctx context.Context, c *entity.CommissionConfig) error
	// CountByUser cuenta las filas del usuario, activas o no.
	CountByUser(ctx context.Context, userID string) (int, error)
	// InsertMissing inserta de forma atómica las filas cuyo ID no existe; las existentes no se tocan.
	InsertMissing(ctx context.Context, rows []*entity.CommissionConfig) error
}
