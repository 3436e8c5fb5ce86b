package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"granja-porcina/internal/domain/clientes"
)

type clientesRepo struct {
	mu       sync.RWMutex
	byID     map[string]clientes.Cliente
	byCedula map[string]string // cedula -> id, índice de unicidad
}

func NewClientesRepo() clientes.Repository {
	return &clientesRepo{
		byID:     make(map[string]clientes.Cliente),
		byCedula: make(map[string]string),
	}
}

func (r *clientesRepo) Create(ctx context.Context, c clientes.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// El índice se chequea bajo el mismo lock: acá la unicidad sí es
	// atómica, a diferencia del pre-chequeo del servicio.
	if _, exists := r.byCedula[c.Cedula]; exists {
		return clientes.ErrCedulaDuplicada
	}
	r.byID[c.ID] = c
	r.byCedula[c.Cedula] = c.ID
	return nil
}

func (r *clientesRepo) GetByID(ctx context.Context, id string) (clientes.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clientes.Cliente{}, clientes.ErrNotFound
	}
	return c, nil
}

func (r *clientesRepo) GetByCedula(ctx context.Context, cedula string) (clientes.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCedula[strings.TrimSpace(cedula)]
	if !ok {
		return clientes.Cliente{}, clientes.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *clientesRepo) List(ctx context.Context) ([]clientes.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clientes.Cliente, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}

	// Orden estable por created_at asc, igual que los adapters SQL.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *clientesRepo) Update(ctx context.Context, c clientes.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[c.ID]
	if !exists {
		return clientes.ErrNotFound
	}
	if c.Cedula != prev.Cedula {
		if _, taken := r.byCedula[c.Cedula]; taken {
			return clientes.ErrCedulaDuplicada
		}
		delete(r.byCedula, prev.Cedula)
		r.byCedula[c.Cedula] = c.ID
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clientesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.byID[id]
	if !exists {
		return clientes.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byCedula, c.Cedula)
	return nil
}
