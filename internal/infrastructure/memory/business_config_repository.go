package memory

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.BusinessConfigRepository = (*BusinessConfigRepository)(nil)

// BusinessConfigRepository implementación en memoria, indexada por usuario.
type BusinessConfigRepository struct {
	s *Store
}

// NewBusinessConfigRepository construye el repositorio.
func NewBusinessConfigRepository(s *Store) *BusinessConfigRepository {
	return &BusinessConfigRepository{s: s}
}

func (r *BusinessConfigRepository) GetByUser(_ context.Context, userID string) (*entity.BusinessConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.business[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *BusinessConfigRepository) Create(_ context.Context, c *entity.BusinessConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.business[c.UserID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.s.business[c.UserID] = &cp
	return nil
}

func (r *BusinessConfigRepository) Update(_ context.Context, c *entity.BusinessConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.business[c.UserID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.business[c.UserID] = &cp
	return nil
}
