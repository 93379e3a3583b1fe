package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// BusinessConfigRepository define el puerto de persistencia para BusinessConfig (uno por usuario).
type BusinessConfigRepository interface {
	GetByUser(ctx context.Context, userID string) (*entity.BusinessConfig, error)
	// Create devuelve domain.ErrDuplicate si el usuario ya tiene configuración.
	Create(ctx context.Context, c *entity.BusinessConfig) error
	Update(ctx context.Context, c *entity.BusinessConfig) error
}
