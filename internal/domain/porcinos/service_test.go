package porcinos

import (
	"context"
	"errors"
	"testing"
	"time"

	"granja-porcina/internal/domain/alimentaciones"
	"granja-porcina/internal/domain/clientes"
)

// -------------------------
// Repos de prueba (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Porcino
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Porcino{}}
}

func (r *testRepo) Create(ctx context.Context, p Porcino) error {
	for _, e := range r.byID {
		if e.Identificacion == p.Identificacion {
			return ErrIdentificacionDuplicada
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Porcino, error) {
	p, ok := r.byID[id]
	if !ok {
		return Porcino{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetByIdentificacion(ctx context.Context, identificacion string) (Porcino, error) {
	for _, p := range r.byID {
		if p.Identificacion == identificacion {
			return p, nil
		}
	}
	return Porcino{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Porcino, error) {
	out := make([]Porcino, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Porcino) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByCliente(ctx context.Context, clienteID string) ([]Porcino, error) {
	out := make([]Porcino, 0)
	for _, p := range r.byID {
		if p.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByCliente(ctx context.Context, clienteID string) error {
	for id, p := range r.byID {
		if p.ClienteID == clienteID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *testRepo) ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error) {
	for _, p := range r.byID {
		if p.AlimentacionID == alimentacionID {
			return true, nil
		}
	}
	return false, nil
}

type testClientesRepo struct {
	byID map[string]clientes.Cliente
}

func (r *testClientesRepo) Create(ctx context.Context, c clientes.Cliente) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testClientesRepo) GetByID(ctx context.Context, id string) (clientes.Cliente, error) {
	c, ok := r.byID[id]
	if !ok {
		return clientes.Cliente{}, clientes.ErrNotFound
	}
	return c, nil
}

func (r *testClientesRepo) GetByCedula(ctx context.Context, cedula string) (clientes.Cliente, error) {
	for _, c := range r.byID {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return clientes.Cliente{}, clientes.ErrNotFound
}

func (r *testClientesRepo) List(ctx context.Context) ([]clientes.Cliente, error) { return nil, nil }

func (r *testClientesRepo) Update(ctx context.Context, c clientes.Cliente) error { return nil }

func (r *testClientesRepo) Delete(ctx context.Context, id string) error { return nil }

type testAlimRepo struct {
	byID map[string]alimentaciones.Alimentacion
}

func (r *testAlimRepo) Create(ctx context.Context, a alimentaciones.Alimentacion) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testAlimRepo) GetByID(ctx context.Context, id string) (alimentaciones.Alimentacion, error) {
	a, ok := r.byID[id]
	if !ok {
		return alimentaciones.Alimentacion{}, alimentaciones.ErrNotFound
	}
	return a, nil
}

func (r *testAlimRepo) List(ctx context.Context) ([]alimentaciones.Alimentacion, error) {
	return nil, nil
}

func (r *testAlimRepo) Update(ctx context.Context, a alimentaciones.Alimentacion) error { return nil }

func (r *testAlimRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	cli := &testClientesRepo{byID: map[string]clientes.Cliente{
		"cli-1": {ID: "cli-1", Cedula: "001", Nombres: "Ana", Apellidos: "Lopez"},
	}}
	alim := &testAlimRepo{byID: map[string]alimentaciones.Alimentacion{
		"alim-1": {ID: "alim-1", Descripcion: "Maiz", Dosis: "2kg/day"},
	}}
	svc := NewService(repo, cli, alim)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validInput() CreateInput {
	raza := RazaYork
	edad := 3.0
	peso := 20.0
	return CreateInput{
		Identificacion: "P1",
		Raza:           &raza,
		Edad:           &edad,
		Peso:           &peso,
		ClienteID:      "cli-1",
		AlimentacionID: "alim-1",
	}
}

// -------------------------
// Tests
// -------------------------

func TestRazaNombre_Mapping(t *testing.T) {
	cases := map[int]string{
		1: "York",
		2: "Hamp",
		3: "Duroc",
		0: "",
		4: "",
	}
	for code, want := range cases {
		if got := RazaNombre(code); got != want {
			t.Errorf("RazaNombre(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestCreate_OK(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
	if p.Raza != RazaYork || RazaNombre(p.Raza) != "York" {
		t.Fatalf("raza = %d (%s), want 1 (York)", p.Raza, RazaNombre(p.Raza))
	}
	if p.CreatedAt != p.UpdatedAt {
		t.Fatal("expected created_at == updated_at on create")
	}
}

func TestCreate_CamposObligatorios(t *testing.T) {
	svc, repo := newTestService()

	in := validInput()
	in.Edad = nil
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrCamposObligatorios) {
		t.Fatalf("expected ErrCamposObligatorios, got %v", err)
	}

	in = validInput()
	in.Identificacion = "  "
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrCamposObligatorios) {
		t.Fatalf("expected ErrCamposObligatorios, got %v", err)
	}

	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.byID))
	}
}

func TestCreate_RazaInvalida(t *testing.T) {
	svc, _ := newTestService()

	for _, raza := range []int{0, 4, -1, 99} {
		in := validInput()
		in.Raza = &raza
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrRazaInvalida) {
			t.Fatalf("raza %d: expected ErrRazaInvalida, got %v", raza, err)
		}
	}
}

func TestCreate_EdadPesoCero_EsValido(t *testing.T) {
	svc, _ := newTestService()

	cero := 0.0
	in := validInput()
	in.Edad = &cero
	in.Peso = &cero

	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("edad/peso 0 should be valid: %v", err)
	}
	if p.Edad != 0 || p.Peso != 0 {
		t.Fatalf("expected edad=0 peso=0, got %g %g", p.Edad, p.Peso)
	}
}

func TestCreate_EdadPesoNegativos(t *testing.T) {
	svc, _ := newTestService()

	neg := -1.0
	in := validInput()
	in.Edad = &neg
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrEdadInvalida) {
		t.Fatalf("expected ErrEdadInvalida, got %v", err)
	}

	in = validInput()
	in.Peso = &neg
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrPesoInvalido) {
		t.Fatalf("expected ErrPesoInvalido, got %v", err)
	}
}

func TestCreate_IdentificacionDuplicada(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), validInput()); !errors.Is(err, ErrIdentificacionDuplicada) {
		t.Fatalf("expected ErrIdentificacionDuplicada, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.byID))
	}
}

func TestCreate_ReferenciasInexistentes(t *testing.T) {
	svc, repo := newTestService()

	in := validInput()
	in.ClienteID = "cli-nope"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrClienteNoExiste) {
		t.Fatalf("expected ErrClienteNoExiste, got %v", err)
	}

	in = validInput()
	in.AlimentacionID = "alim-nope"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrAlimentacionNoExiste) {
		t.Fatalf("expected ErrAlimentacionNoExiste, got %v", err)
	}

	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.byID))
	}
}

func TestUpdate_Parcial(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	peso := 42.5
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Peso: &peso})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Peso != 42.5 {
		t.Fatalf("peso = %g, want 42.5", updated.Peso)
	}
	// Los campos omitidos no se tocan.
	if updated.Identificacion != p.Identificacion || updated.Raza != p.Raza || updated.Edad != p.Edad {
		t.Fatal("omitted fields must stay unchanged")
	}
}

func TestUpdate_RevalidaCamposIncluidos(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mala := 9
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{Raza: &mala}); !errors.Is(err, ErrRazaInvalida) {
		t.Fatalf("expected ErrRazaInvalida, got %v", err)
	}

	fantasma := "cli-nope"
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{ClienteID: &fantasma}); !errors.Is(err, ErrClienteNoExiste) {
		t.Fatalf("expected ErrClienteNoExiste, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	peso := 10.0
	if _, err := svc.Update(context.Background(), "nope", UpdateInput{Peso: &peso}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDetalle_ResuelveReferencias(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	d, err := svc.GetDetalle(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("detalle: %v", err)
	}
	if d.Cliente == nil || d.Cliente.Cedula != "001" {
		t.Fatal("expected resolved cliente")
	}
	if d.Alimentacion == nil || d.Alimentacion.Descripcion != "Maiz" {
		t.Fatal("expected resolved alimentacion")
	}
}

func TestResumenesByCliente(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	rs, err := svc.ResumenesByCliente(context.Background(), "cli-1")
	if err != nil {
		t.Fatalf("resumenes: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("expected 1 resumen, got %d", len(rs))
	}
	if rs[0].RazaNombre != "York" {
		t.Fatalf("razaNombre = %q, want York", rs[0].RazaNombre)
	}
}
