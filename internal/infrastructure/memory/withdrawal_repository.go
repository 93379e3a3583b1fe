package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepository)(nil)

// WithdrawalRepository implementación en memoria de repository.WithdrawalRepository.
type WithdrawalRepository struct {
	s *Store
}

// NewWithdrawalRepository construye el repositorio.
func NewWithdrawalRepository(s *Store) *WithdrawalRepository {
	return &WithdrawalRepository{s: s}
}

func (r *WithdrawalRepository) Create(_ context.Context, w *entity.Withdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.withdrawals[w.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *w
	r.s.withdrawals[w.ID] = &cp
	return nil
}

func (r *WithdrawalRepository) GetByID(_ context.Context, id string) (*entity.Withdrawal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.withdrawals[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *WithdrawalRepository) List(_ context.Context, f repository.WithdrawalFilter) ([]*entity.Withdrawal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Withdrawal, 0)
	for _, w := range r.s.withdrawals {
		if w.UserID != f.UserID || !inRange(w.Date, f.StartDate, f.EndDate) {
			continue
		}
		if f.Reason != "" && w.Reason != f.Reason {
			continue
		}
		cp := *w
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *WithdrawalRepository) Update(_ context.Context, w *entity.Withdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.withdrawals[w.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *w
	r.s.withdrawals[w.ID] = &cp
	return nil
}

func (r *WithdrawalRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.withdrawals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.withdrawals, id)
	return nil
}
