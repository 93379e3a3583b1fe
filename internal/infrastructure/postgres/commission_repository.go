package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.CommissionRepository = (*CommissionRepo)(nil)

const commissionColumns = `id, user_id, payment_method, card_brand, installments, percentage, fixed_amount, is_active, updated_at`

// CommissionRepo tabla de comisiones sobre PostgreSQL.
type CommissionRepo struct {
	pool *pgxpool.Pool
}

// NewCommissionRepository construye el adaptador.
func NewCommissionRepository(pool *pgxpool.Pool) *CommissionRepo {
	return &CommissionRepo{pool: pool}
}

// ListActive filas activas del usuario.
func (r *CommissionRepo) ListActive(ctx context.Context, userID string) ([]*entity.CommissionConfig, error) {
	query := `SELECT ` + commissionColumns + ` FROM commission_configs WHERE user_id = $1 AND is_active ORDER BY id`
	return r.list(ctx, query, userID)
}

// FindActive primera fila activa que coincide; marca y cuotas solo filtran si vienen.
func (r *CommissionRepo) FindActive(ctx context.Context, q repository.CommissionLookup) (*entity.CommissionConfig, error) {
	var w where
	w.add("user_id = ?", q.UserID)
	w.add("payment_method = ?", q.PaymentMethod)
	if q.CardBrand != nil {
		w.add("card_brand = ?", *q.CardBrand)
	}
	if q.Installments != nil {
		w.add("installments = ?", *q.Installments)
	}
	list, err := r.list(ctx, `SELECT `+commissionColumns+` FROM commission_configs`+w.String()+` AND is_active ORDER BY id LIMIT 1`, w.args...)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// GetByID obtiene una fila por ID.
func (r *CommissionRepo) GetByID(ctx context.Context, id string) (*entity.CommissionConfig, error) {
	c, err := scanCommission(r.pool.QueryRow(ctx, `SELECT `+commissionColumns+` FROM commission_configs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission: %w", err)
	}
	return c, nil
}

// Update modifica porcentaje, monto fijo y estado.
func (r *CommissionRepo) Update(ctx context.Context, c *entity.CommissionConfig) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE commission_configs SET percentage = $2, fixed_amount = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		c.ID, c.Percentage, nullDecimal(c.FixedAmount), c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByUser cuenta las filas del usuario, activas o no.
func (r *CommissionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM commission_configs WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count commissions: %w", err)
	}
	return n, nil
}

// InsertMissing inserta todas las filas en una transacción; un ID existente se conserva tal cual.
func (r *CommissionRepo) InsertMissing(ctx context.Context, rows []*entity.CommissionConfig) error {
	query := `
		INSERT INTO commission_configs (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, c := range rows {
			batch.Queue(query,
				c.ID, c.UserID, c.PaymentMethod, c.CardBrand, c.Installments,
				c.Percentage, nullDecimal(c.FixedAmount), c.IsActive, c.UpdatedAt,
			)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("insert commissions: %w", err)
	}
	return nil
}

func (r *CommissionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CommissionConfig, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.CommissionConfig, 0)
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCommission(row pgx.Row) (*entity.CommissionConfig, error) {
	var (
		c     entity.CommissionConfig
		fixed decimal.NullDecimal
	)
	if err := row.Scan(
		&c.ID, &c.UserID, &c.PaymentMethod, &c.CardBrand, &c.Installments,
		&c.Percentage, &fixed, &c.IsActive, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.FixedAmount = decimalPtr(fixed)
	return &c, nil
}
