package memory

import (
	"context"
	"sort"
	"sync"

	"granja-porcina/internal/domain/alimentaciones"
)

type alimentacionesRepo struct {
	mu   sync.RWMutex
	byID map[string]alimentaciones.Alimentacion
}

func NewAlimentacionesRepo() alimentaciones.Repository {
	return &alimentacionesRepo{
		byID: make(map[string]alimentaciones.Alimentacion),
	}
}

func (r *alimentacionesRepo) Create(ctx context.Context, a alimentaciones.Alimentacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[a.ID] = a
	return nil
}

func (r *alimentacionesRepo) GetByID(ctx context.Context, id string) (alimentaciones.Alimentacion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return alimentaciones.Alimentacion{}, alimentaciones.ErrNotFound
	}
	return a, nil
}

func (r *alimentacionesRepo) List(ctx context.Context) ([]alimentaciones.Alimentacion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]alimentaciones.Alimentacion, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *alimentacionesRepo) Update(ctx context.Context, a alimentaciones.Alimentacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return alimentaciones.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *alimentacionesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return alimentaciones.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
