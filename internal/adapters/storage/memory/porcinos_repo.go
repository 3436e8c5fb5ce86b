package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"granja-porcina/internal/domain/porcinos"
)

type porcinosRepo struct {
	mu               sync.RWMutex
	byID             map[string]porcinos.Porcino
	byIdentificacion map[string]string // identificacion -> id, índice de unicidad
}

func NewPorcinosRepo() porcinos.Repository {
	return &porcinosRepo{
		byID:             make(map[string]porcinos.Porcino),
		byIdentificacion: make(map[string]string),
	}
}

func (r *porcinosRepo) Create(ctx context.Context, p porcinos.Porcino) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byIdentificacion[p.Identificacion]; exists {
		return porcinos.ErrIdentificacionDuplicada
	}
	r.byID[p.ID] = p
	r.byIdentificacion[p.Identificacion] = p.ID
	return nil
}

func (r *porcinosRepo) GetByID(ctx context.Context, id string) (porcinos.Porcino, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return porcinos.Porcino{}, porcinos.ErrNotFound
	}
	return p, nil
}

func (r *porcinosRepo) GetByIdentificacion(ctx context.Context, identificacion string) (porcinos.Porcino, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byIdentificacion[strings.TrimSpace(identificacion)]
	if !ok {
		return porcinos.Porcino{}, porcinos.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *porcinosRepo) List(ctx context.Context) ([]porcinos.Porcino, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]porcinos.Porcino, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sortByCreatedAt(out)
	return out, nil
}

func (r *porcinosRepo) Update(ctx context.Context, p porcinos.Porcino) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[p.ID]
	if !exists {
		return porcinos.ErrNotFound
	}
	if p.Identificacion != prev.Identificacion {
		if _, taken := r.byIdentificacion[p.Identificacion]; taken {
			return porcinos.ErrIdentificacionDuplicada
		}
		delete(r.byIdentificacion, prev.Identificacion)
		r.byIdentificacion[p.Identificacion] = p.ID
	}
	r.byID[p.ID] = p
	return nil
}

func (r *porcinosRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.byID[id]
	if !exists {
		return porcinos.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byIdentificacion, p.Identificacion)
	return nil
}

func (r *porcinosRepo) ListByCliente(ctx context.Context, clienteID string) ([]porcinos.Porcino, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]porcinos.Porcino, 0)
	for _, p := range r.byID {
		if p.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	sortByCreatedAt(out)
	return out, nil
}

func (r *porcinosRepo) DeleteByCliente(ctx context.Context, clienteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byID {
		if p.ClienteID == clienteID {
			delete(r.byID, id)
			delete(r.byIdentificacion, p.Identificacion)
		}
	}
	return nil
}

func (r *porcinosRepo) ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.AlimentacionID == alimentacionID {
			return true, nil
		}
	}
	return false, nil
}

func sortByCreatedAt(ps []porcinos.Porcino) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].CreatedAt.Before(ps[j].CreatedAt)
	})
}
