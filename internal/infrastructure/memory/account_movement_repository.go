package memory

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/ledger"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.AccountMovementRepository = (*AccountMovementRepository)(nil)

// AccountMovementRepository implementación en memoria del libro de cuenta corriente.
type AccountMovementRepository struct {
	s *Store
	j *journal
}

// NewAccountMovementRepository construye el repositorio.
func NewAccountMovementRepository(s *Store) *AccountMovementRepository {
	return &AccountMovementRepository{s: s}
}

func (r *AccountMovementRepository) Create(_ context.Context, m *entity.AccountMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[m.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.movementSeq++
	m.Seq = r.s.movementSeq
	r.s.movements[m.ID] = cloneMovement(m)
	id := m.ID
	r.j.record(func() {
		r.s.mu.Lock()
		delete(r.s.movements, id)
		r.s.mu.Unlock()
	})
	return nil
}

func (r *AccountMovementRepository) GetByID(_ context.Context, id string) (*entity.AccountMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return cloneMovement(m), nil
}

func (r *AccountMovementRepository) List(_ context.Context, f repository.MovementFilter) ([]*entity.AccountMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.AccountMovement, 0)
	for _, m := range r.s.movements {
		if m.UserID != f.UserID {
			continue
		}
		if f.CustomerID != "" && m.CustomerID != f.CustomerID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if !inRange(m.Date, f.StartDate, f.EndDate) {
			continue
		}
		out = append(out, cloneMovement(m))
	}
	ledger.SortNewestFirst(out)
	return out, nil
}

func (r *AccountMovementRepository) Latest(ctx context.Context, userID, customerID string) (*entity.AccountMovement, error) {
	ms, err := r.List(ctx, repository.MovementFilter{UserID: userID, CustomerID: customerID})
	if err != nil || len(ms) == 0 {
		return nil, err
	}
	return ms[0], nil
}

func (r *AccountMovementRepository) Update(_ context.Context, m *entity.AccountMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.movements[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	r.s.movements[m.ID] = cloneMovement(m)
	r.j.record(func() {
		r.s.mu.Lock()
		r.s.movements[prev.ID] = prev
		r.s.mu.Unlock()
	})
	return nil
}

func (r *AccountMovementRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.movements[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.s.movements, id)
	r.j.record(func() {
		r.s.mu.Lock()
		r.s.movements[prev.ID] = prev
		r.s.mu.Unlock()
	})
	return nil
}
