package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.CommissionRepository = (*CommissionRepository)(nil)

// CommissionRepository implementación en memoria de repository.CommissionRepository.
type CommissionRepository struct {
	s *Store
}

// NewCommissionRepository construye el repositorio.
func NewCommissionRepository(s *Store) *CommissionRepository {
	return &CommissionRepository{s: s}
}

func (r *CommissionRepository) ListActive(_ context.Context, userID string) ([]*entity.CommissionConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.CommissionConfig, 0)
	for _, c := range r.s.commissions {
		if c.UserID == userID && c.IsActive {
			out = append(out, cloneCommission(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CommissionRepository) FindActive(ctx context.Context, q repository.CommissionLookup) (*entity.CommissionConfig, error) {
	rows, err := r.ListActive(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	for _, c := range rows {
		if c.PaymentMethod != q.PaymentMethod {
			continue
		}
		if q.CardBrand != nil && (c.CardBrand == nil || *c.CardBrand != *q.CardBrand) {
			continue
		}
		if q.Installments != nil && (c.Installments == nil || *c.Installments != *q.Installments) {
			continue
		}
		return c, nil
	}
	return nil, nil
}

func (r *CommissionRepository) GetByID(_ context.Context, id string) (*entity.CommissionConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.commissions[id]
	if !ok {
		return nil, nil
	}
	return cloneCommission(c), nil
}

func (r *CommissionRepository) Update(_ context.Context, c *entity.CommissionConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.commissions[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.commissions[c.ID] = cloneCommission(c)
	return nil
}

func (r *CommissionRepository) CountByUser(_ context.Context, userID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, c := range r.s.commissions {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *CommissionRepository) InsertMissing(_ context.Context, rows []*entity.CommissionConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range rows {
		if _, ok := r.s.commissions[c.ID]; ok {
			continue
		}
		r.s.commissions[c.ID] = cloneCommission(c)
	}
	return nil
}
