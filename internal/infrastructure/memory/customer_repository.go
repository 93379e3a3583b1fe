package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementación en memoria de repository.CustomerRepository.
type CustomerRepository struct {
	s *Store
	j *journal
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(s *Store) *CustomerRepository {
	return &CustomerRepository{s: s}
}

func (r *CustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.customers[c.ID] = cloneCustomer(c)
	id := c.ID
	r.j.record(func() {
		r.s.mu.Lock()
		delete(r.s.customers, id)
		r.s.mu.Unlock()
	})
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

// GetForUpdate equivale a GetByID: el LedgerTxRunner ya serializa las mutaciones del libro.
func (r *CustomerRepository) GetForUpdate(ctx context.Context, id string) (*entity.Customer, error) {
	return r.GetByID(ctx, id)
}

func (r *CustomerRepository) ListByUser(_ context.Context, userID string) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Customer
	for _, c := range r.s.customers {
		if c.UserID == userID {
			out = append(out, cloneCustomer(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.customers[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	r.s.customers[c.ID] = cloneCustomer(c)
	r.j.record(func() {
		r.s.mu.Lock()
		r.s.customers[prev.ID] = prev
		r.s.mu.Unlock()
	})
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	r.j.record(func() {
		r.s.mu.Lock()
		r.s.customers[prev.ID] = prev
		r.s.mu.Unlock()
	})
	return nil
}
