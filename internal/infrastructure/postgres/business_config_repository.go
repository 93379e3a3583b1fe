package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.BusinessConfigRepository = (*BusinessConfigRepo)(nil)

const businessColumns = `id, user_id, business_name, owner_name, address, phone, email, website, logo,
	description, currency, timezone, created_at, updated_at`

// BusinessConfigRepo configuración del negocio, una fila por usuario (UNIQUE user_id).
type BusinessConfigRepo struct {
	q Querier
}

// NewBusinessConfigRepository construye el adaptador.
func NewBusinessConfigRepository(q Querier) *BusinessConfigRepo {
	return &BusinessConfigRepo{q: q}
}

// GetByUser devuelve la configuración del usuario o nil.
func (r *BusinessConfigRepo) GetByUser(ctx context.Context, userID string) (*entity.BusinessConfig, error) {
	var b entity.BusinessConfig
	err := r.q.QueryRow(ctx, `SELECT `+businessColumns+` FROM business_configs WHERE user_id = $1`, userID).Scan(
		&b.ID, &b.UserID, &b.BusinessName, &b.OwnerName, &b.Address, &b.Phone, &b.Email, &b.Website, &b.Logo,
		&b.Description, &b.Currency, &b.Timezone, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business config: %w", err)
	}
	return &b, nil
}

// Create devuelve ErrDuplicate si el usuario ya tiene configuración.
func (r *BusinessConfigRepo) Create(ctx context.Context, b *entity.BusinessConfig) error {
	query := `
		INSERT INTO business_configs (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.UserID, b.BusinessName, b.OwnerName, b.Address, b.Phone, b.Email, b.Website, b.Logo,
		b.Description, b.Currency, b.Timezone, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business config: %w", err)
	}
	return nil
}

// Update reescribe la configuración del usuario.
func (r *BusinessConfigRepo) Update(ctx context.Context, b *entity.BusinessConfig) error {
	query := `
		UPDATE business_configs SET business_name = $2, owner_name = $3, address = $4, phone = $5,
			email = $6, website = $7, logo = $8, description = $9, currency = $10, timezone = $11, updated_at = $12
		WHERE user_id = $1`
	tag, err := r.q.Exec(ctx, query,
		b.UserID, b.BusinessName, b.OwnerName, b.Address, b.Phone,
		b.Email, b.Website, b.Logo, b.Description, b.Currency, b.Timezone, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
