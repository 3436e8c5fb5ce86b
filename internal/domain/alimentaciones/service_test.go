package alimentaciones

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Alimentacion
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Alimentacion{}}
}

func (r *testRepo) Create(ctx context.Context, a Alimentacion) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Alimentacion, error) {
	a, ok := r.byID[id]
	if !ok {
		return Alimentacion{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Alimentacion, error) {
	out := make([]Alimentacion, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Alimentacion) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testReferencias simula el módulo porcinos con un set de planes en uso.
type testReferencias struct {
	enUso map[string]bool
}

func (t *testReferencias) ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error) {
	return t.enUso[alimentacionID], nil
}

func newTestService() (*Service, *testRepo, *testReferencias) {
	repo := newTestRepo()
	refs := &testReferencias{enUso: map[string]bool{}}
	svc := NewService(repo, refs)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo, refs
}

func TestCreate_OK(t *testing.T) {
	svc, _, _ := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{Descripcion: " Maíz molido ", Dosis: "2kg/día"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated id")
	}
	if a.Descripcion != "Maíz molido" {
		t.Fatalf("descripcion = %q, want trimmed", a.Descripcion)
	}
}

func TestCreate_DescripcionObligatoria(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, err := svc.Create(context.Background(), CreateInput{Descripcion: "  ", Dosis: "2kg"}); !errors.Is(err, ErrDescripcionObligatoria) {
		t.Fatalf("expected ErrDescripcionObligatoria, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.byID))
	}
}

func TestUpdate_Parcial(t *testing.T) {
	svc, _, _ := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{Descripcion: "Maíz", Dosis: "2kg/día"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	dosis := "3kg/día"
	updated, err := svc.Update(context.Background(), a.ID, UpdateInput{Dosis: &dosis})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Dosis != dosis {
		t.Fatalf("dosis = %q, want %q", updated.Dosis, dosis)
	}
	if updated.Descripcion != "Maíz" {
		t.Fatal("omitted fields must stay unchanged")
	}
}

func TestDelete_RechazaSiEstaAsignada(t *testing.T) {
	svc, repo, refs := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{Descripcion: "Maíz", Dosis: "2kg/día"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	refs.enUso[a.ID] = true

	if err := svc.Delete(context.Background(), a.ID); !errors.Is(err, ErrAsignada) {
		t.Fatalf("expected ErrAsignada, got %v", err)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatal("plan must survive a rejected delete")
	}

	// Cuando deja de estar en uso, el borrado procede.
	refs.enUso[a.ID] = false
	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.byID[a.ID]; ok {
		t.Fatal("plan should be gone")
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
