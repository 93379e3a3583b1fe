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

var _ repository.AccountMovementRepository = (*AccountMovementRepo)(nil)

const movementColumns = `id, seq, customer_id, customer_name, to_char(date, 'YYYY-MM-DD'), description, code,
	amount, balance, type, user_id, created_at, updated_at`

const movementOrder = ` ORDER BY date DESC, created_at DESC, seq DESC`

// AccountMovementRepo libro de cuenta corriente sobre PostgreSQL (usable con pool o tx).
type AccountMovementRepo struct {
	q Querier
}

// NewAccountMovementRepository construye el adaptador.
func NewAccountMovementRepository(q Querier) *AccountMovementRepo {
	return &AccountMovementRepo{q: q}
}

// Create inserta el movimiento; seq lo asigna la secuencia de la tabla.
func (r *AccountMovementRepo) Create(ctx context.Context, m *entity.AccountMovement) error {
	query := `
		INSERT INTO account_movements
			(id, customer_id, customer_name, date, description, code, amount, balance, type, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING seq`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.CustomerID, m.CustomerName, m.Date, m.Description, m.Code,
		m.Amount, m.Balance, m.Type, m.UserID, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *AccountMovementRepo) GetByID(ctx context.Context, id string) (*entity.AccountMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM account_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account movement: %w", err)
	}
	return m, nil
}

// List movimientos filtrados, más recientes primero.
func (r *AccountMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.AccountMovement, error) {
	var w where
	w.add("user_id = ?", f.UserID)
	if f.CustomerID != "" {
		w.add("customer_id = ?", f.CustomerID)
	}
	if f.Type != "" {
		w.add("type = ?", f.Type)
	}
	w.dateRange("date", f.StartDate, f.EndDate)
	return r.list(ctx, `SELECT `+movementColumns+` FROM account_movements`+w.String()+movementOrder, w.args...)
}

// Latest el movimiento más reciente del cliente o nil.
func (r *AccountMovementRepo) Latest(ctx context.Context, userID, customerID string) (*entity.AccountMovement, error) {
	list, err := r.list(ctx,
		`SELECT `+movementColumns+` FROM account_movements WHERE user_id = $1 AND customer_id = $2`+movementOrder+` LIMIT 1`,
		userID, customerID)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// Update reescribe los campos mutables del movimiento.
func (r *AccountMovementRepo) Update(ctx context.Context, m *entity.AccountMovement) error {
	query := `
		UPDATE account_movements SET date = $2::date, description = $3, code = $4, amount = $5,
			balance = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, m.ID, m.Date, m.Description, m.Code, m.Amount, m.Balance, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update account movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el movimiento sin tocar los saldos de los demás.
func (r *AccountMovementRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM account_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.AccountMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list account movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.AccountMovement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.AccountMovement, error) {
	var m entity.AccountMovement
	if err := row.Scan(
		&m.ID, &m.Seq, &m.CustomerID, &m.CustomerName, &m.Date, &m.Description, &m.Code,
		&m.Amount, &m.Balance, &m.Type, &m.UserID, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
