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

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

const withdrawalColumns = `id, user_id, amount, reason, description, to_char(date, 'YYYY-MM-DD'), created_at, updated_at`

// WithdrawalRepo retiros de caja sobre PostgreSQL.
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador.
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste un retiro.
func (r *WithdrawalRepo) Create(ctx context.Context, w *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, user_id, amount, reason, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8)`
	_, err := r.q.Exec(ctx, query, w.ID, w.UserID, w.Amount, w.Reason, w.Description, w.Date, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID obtiene un retiro por ID.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id string) (*entity.Withdrawal, error) {
	w, err := scanWithdrawal(r.q.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

// List retiros filtrados, más recientes primero.
func (r *WithdrawalRepo) List(ctx context.Context, f repository.WithdrawalFilter) ([]*entity.Withdrawal, error) {
	var w where
	w.add("user_id = ?", f.UserID)
	w.dateRange("date", f.StartDate, f.EndDate)
	if f.Reason != "" {
		w.add("reason = ?", f.Reason)
	}
	rows, err := r.q.Query(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals`+w.String()+` ORDER BY date DESC, created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Withdrawal, 0)
	for rows.Next() {
		item, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update reescribe el retiro.
func (r *WithdrawalRepo) Update(ctx context.Context, w *entity.Withdrawal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE withdrawals SET amount = $2, reason = $3, description = $4, date = $5::date, updated_at = $6 WHERE id = $1`,
		w.ID, w.Amount, w.Reason, w.Description, w.Date, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un retiro por ID.
func (r *WithdrawalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM withdrawals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWithdrawal(row pgx.Row) (*entity.Withdrawal, error) {
	var w entity.Withdrawal
	if err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Reason, &w.Description, &w.Date, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
