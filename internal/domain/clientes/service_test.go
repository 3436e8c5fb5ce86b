package clientes

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Cliente
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Cliente{}}
}

func (r *testRepo) Create(ctx context.Context, c Cliente) error {
	for _, e := range r.byID {
		if e.Cedula == c.Cedula {
			return ErrCedulaDuplicada
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Cliente, error) {
	c, ok := r.byID[id]
	if !ok {
		return Cliente{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) GetByCedula(ctx context.Context, cedula string) (Cliente, error) {
	for _, c := range r.byID {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return Cliente{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Cliente, error) {
	out := make([]Cliente, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, c Cliente) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testPorcinos registra las cascadas que se le pidieron.
type testPorcinos struct {
	deleted []string
}

func (p *testPorcinos) DeleteByCliente(ctx context.Context, clienteID string) error {
	p.deleted = append(p.deleted, clienteID)
	return nil
}

func newTestService() (*Service, *testRepo, *testPorcinos) {
	repo := newTestRepo()
	porcinos := &testPorcinos{}
	svc := NewService(repo, porcinos)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo, porcinos
}

func TestCreate_OK(t *testing.T) {
	svc, _, _ := newTestService()

	c, err := svc.Create(context.Background(), CreateInput{
		Cedula:    " 001 ",
		Nombres:   "Ana",
		Apellidos: "Lopez",
		Direccion: "Calle 1",
		Telefono:  "555",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
	if c.Cedula != "001" {
		t.Fatalf("cedula = %q, want trimmed %q", c.Cedula, "001")
	}
}

func TestCreate_CamposObligatorios(t *testing.T) {
	svc, repo, _ := newTestService()

	cases := []CreateInput{
		{Nombres: "Ana", Apellidos: "Lopez"},
		{Cedula: "001", Apellidos: "Lopez"},
		{Cedula: "001", Nombres: "Ana"},
		{Cedula: "  ", Nombres: "Ana", Apellidos: "Lopez"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrCamposObligatorios) {
			t.Errorf("case %d: expected ErrCamposObligatorios, got %v", i, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.byID))
	}
}

func TestCreate_CedulaDuplicada(t *testing.T) {
	svc, _, _ := newTestService()

	in := CreateInput{Cedula: "001", Nombres: "Ana", Apellidos: "Lopez"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.Nombres = "Otra"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrCedulaDuplicada) {
		t.Fatalf("expected ErrCedulaDuplicada, got %v", err)
	}
}

func TestUpdate_Parcial(t *testing.T) {
	svc, _, _ := newTestService()

	c, err := svc.Create(context.Background(), CreateInput{Cedula: "001", Nombres: "Ana", Apellidos: "Lopez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tel := "3001234567"
	updated, err := svc.Update(context.Background(), c.ID, UpdateInput{Telefono: &tel})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Telefono != tel {
		t.Fatalf("telefono = %q, want %q", updated.Telefono, tel)
	}
	if updated.Cedula != "001" || updated.Nombres != "Ana" {
		t.Fatal("omitted fields must stay unchanged")
	}
}

func TestUpdate_CedulaDuplicada(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create(context.Background(), CreateInput{Cedula: "001", Nombres: "Ana", Apellidos: "Lopez"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	c2, err := svc.Create(context.Background(), CreateInput{Cedula: "002", Nombres: "Luis", Apellidos: "Mora"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	otra := "001"
	if _, err := svc.Update(context.Background(), c2.ID, UpdateInput{Cedula: &otra}); !errors.Is(err, ErrCedulaDuplicada) {
		t.Fatalf("expected ErrCedulaDuplicada, got %v", err)
	}

	// Reenviar la propia cédula no cuenta como duplicado.
	misma := "002"
	if _, err := svc.Update(context.Background(), c2.ID, UpdateInput{Cedula: &misma}); err != nil {
		t.Fatalf("same cedula should be allowed: %v", err)
	}
}

func TestDelete_CascadaPorcinos(t *testing.T) {
	svc, repo, porcinos := newTestService()

	c, err := svc.Create(context.Background(), CreateInput{Cedula: "001", Nombres: "Ana", Apellidos: "Lopez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := repo.byID[c.ID]; ok {
		t.Fatal("cliente should be gone")
	}
	if len(porcinos.deleted) != 1 || porcinos.deleted[0] != c.ID {
		t.Fatalf("expected cascade for %s, got %v", c.ID, porcinos.deleted)
	}
}

func TestDelete_NotFound_NoCascada(t *testing.T) {
	svc, _, porcinos := newTestService()

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(porcinos.deleted) != 0 {
		t.Fatal("cascade must not run when the cliente does not exist")
	}
}
