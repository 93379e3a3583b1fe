package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// MovementFilter filtros de listado de movimientos. UserID es obligatorio.
// StartDate/EndDate son días YYYY-MM-DD inclusivos.
type MovementFilter struct {
	UserID     string
	CustomerID string
	StartDate  string
	EndDate    string
	Type       string
}

// AccountMovementRepository define el puerto de persistencia del libro de cuenta corriente.
type AccountMovementRepository interface {
	// Create persiste el movimiento y le asigna Seq.
	Create(ctx context.Context, m *entity.AccountMovement) error
	GetByID(ctx context.Context, id string) (*entity.AccountMovement, error)
	// List devuelve los movimientos ordenados por (date, created_at, seq) descendente.
	List(ctx context.Context, f MovementFilter) ([]*entity.AccountMovement, error)
	// Latest devuelve el movimiento más reciente del cliente, o nil si no tiene.
	Latest(ctx context.Context, userID, customerID string) (*entity.AccountMovement, error)
	Update(ctx context.Context, m *entity.AccountMovement) error
	Delete(ctx context.Context, id string) error
}
