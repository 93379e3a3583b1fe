package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Las lecturas puntuales devuelven (nil, nil) si no existe; el chequeo de tenant lo hace el caso de uso.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// GetForUpdate lee el cliente bloqueándolo hasta el fin de la transacción en curso.
	GetForUpdate(ctx context.Context, id string) (*entity.Customer, error)
	// ListByUser devuelve los clientes del usuario ordenados por nombre.
	ListByUser(ctx context.Context, userID string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
