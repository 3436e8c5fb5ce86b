package porcinos

import (
	"context"
	"errors"
	"strings"
	"time"

	"granja-porcina/internal/domain/alimentaciones"
	"granja-porcina/internal/domain/clientes"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("Porcino no encontrado")

// ValidationError lleva el mensaje exacto que ve el usuario.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	ErrCamposObligatorios      = ValidationError("Todos los campos son obligatorios.")
	ErrRazaInvalida            = ValidationError("La raza debe ser 1 (York), 2 (Hamp) o 3 (Duroc).")
	ErrEdadInvalida            = ValidationError("La edad debe ser un número mayor o igual a 0.")
	ErrPesoInvalido            = ValidationError("El peso debe ser un número mayor o igual a 0.")
	ErrIdentificacionDuplicada = ValidationError("La identificación ya está registrada.")
	ErrClienteNoExiste         = ValidationError("El cliente no existe.")
	ErrAlimentacionNoExiste    = ValidationError("La alimentación no existe.")
)

type Service struct {
	repo           Repository
	clientes       clientes.Repository
	alimentaciones alimentaciones.Repository
	now            func() time.Time
}

func NewService(repo Repository, cli clientes.Repository, alim alimentaciones.Repository) *Service {
	return &Service{
		repo:           repo,
		clientes:       cli,
		alimentaciones: alim,
		now:            time.Now,
	}
}

// CreateInput usa punteros en los campos numéricos para distinguir
// "ausente" de un 0 legítimo (edad y peso 0 son válidos).
type CreateInput struct {
	Identificacion string
	Raza           *int
	Edad           *float64
	Peso           *float64
	ClienteID      string
	AlimentacionID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Porcino, error) {
	identificacion := strings.TrimSpace(in.Identificacion)
	clienteID := strings.TrimSpace(in.ClienteID)
	alimentacionID := strings.TrimSpace(in.AlimentacionID)

	if identificacion == "" || in.Raza == nil || in.Edad == nil || in.Peso == nil ||
		clienteID == "" || alimentacionID == "" {
		return Porcino{}, ErrCamposObligatorios
	}
	if !RazaValida(*in.Raza) {
		return Porcino{}, ErrRazaInvalida
	}
	if *in.Edad < 0 {
		return Porcino{}, ErrEdadInvalida
	}
	if *in.Peso < 0 {
		return Porcino{}, ErrPesoInvalido
	}

	// Pre-chequeo amigable de unicidad; el índice único del almacén es
	// el que cierra la ventana entre chequeo e inserción.
	if _, err := s.repo.GetByIdentificacion(ctx, identificacion); err == nil {
		return Porcino{}, ErrIdentificacionDuplicada
	} else if !errors.Is(err, ErrNotFound) {
		return Porcino{}, err
	}

	if err := s.checkCliente(ctx, clienteID); err != nil {
		return Porcino{}, err
	}
	if err := s.checkAlimentacion(ctx, alimentacionID); err != nil {
		return Porcino{}, err
	}

	now := s.now()
	p := Porcino{
		ID:             uuid.NewString(),
		Identificacion: identificacion,
		Raza:           *in.Raza,
		Edad:           *in.Edad,
		Peso:           *in.Peso,
		ClienteID:      clienteID,
		AlimentacionID: alimentacionID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Porcino{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Porcino, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Porcino{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Porcino, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCliente(ctx context.Context, clienteID string) ([]Porcino, error) {
	return s.repo.ListByCliente(ctx, clienteID)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar. Raza, cliente y
	// alimentación se revalidan igual que en la creación cuando vienen.
	Identificacion *string
	Raza           *int
	Edad           *float64
	Peso           *float64
	ClienteID      *string
	AlimentacionID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Porcino, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Porcino{}, err
	}

	if in.Identificacion != nil {
		identificacion := strings.TrimSpace(*in.Identificacion)
		if identificacion == "" {
			return Porcino{}, ErrCamposObligatorios
		}
		if identificacion != p.Identificacion {
			if _, err := s.repo.GetByIdentificacion(ctx, identificacion); err == nil {
				return Porcino{}, ErrIdentificacionDuplicada
			} else if !errors.Is(err, ErrNotFound) {
				return Porcino{}, err
			}
		}
		p.Identificacion = identificacion
	}
	if in.Raza != nil {
		if !RazaValida(*in.Raza) {
			return Porcino{}, ErrRazaInvalida
		}
		p.Raza = *in.Raza
	}
	if in.Edad != nil {
		if *in.Edad < 0 {
			return Porcino{}, ErrEdadInvalida
		}
		p.Edad = *in.Edad
	}
	if in.Peso != nil {
		if *in.Peso < 0 {
			return Porcino{}, ErrPesoInvalido
		}
		p.Peso = *in.Peso
	}
	if in.ClienteID != nil {
		clienteID := strings.TrimSpace(*in.ClienteID)
		if err := s.checkCliente(ctx, clienteID); err != nil {
			return Porcino{}, err
		}
		p.ClienteID = clienteID
	}
	if in.AlimentacionID != nil {
		alimentacionID := strings.TrimSpace(*in.AlimentacionID)
		if err := s.checkAlimentacion(ctx, alimentacionID); err != nil {
			return Porcino{}, err
		}
		p.AlimentacionID = alimentacionID
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Porcino{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Detalle es un porcino con sus referencias resueltas para lecturas.
// Cliente o Alimentacion pueden venir nil si la referencia quedó
// huérfana (cascada no atómica); el caller omite el campo.
type Detalle struct {
	Porcino      Porcino
	Cliente      *clientes.Cliente
	Alimentacion *alimentaciones.Alimentacion
}

func (s *Service) GetDetalle(ctx context.Context, id string) (Detalle, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Detalle{}, err
	}
	return s.resolve(ctx, p), nil
}

func (s *Service) ListDetalles(ctx context.Context) ([]Detalle, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Detalle, 0, len(items))
	for _, p := range items {
		out = append(out, s.resolve(ctx, p))
	}
	return out, nil
}

// ResumenesByCliente implementa clientes.PorcinosLister: entrega los
// porcinos del cliente ya resumidos con el nombre de raza calculado.
func (s *Service) ResumenesByCliente(ctx context.Context, clienteID string) ([]clientes.PorcinoResumen, error) {
	items, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	out := make([]clientes.PorcinoResumen, 0, len(items))
	for _, p := range items {
		out = append(out, clientes.PorcinoResumen{
			ID:             p.ID,
			Identificacion: p.Identificacion,
			Raza:           p.Raza,
			RazaNombre:     RazaNombre(p.Raza),
			Edad:           p.Edad,
			Peso:           p.Peso,
			AlimentacionID: p.AlimentacionID,
		})
	}
	return out, nil
}

// ExistsByAlimentacion implementa alimentaciones.Referencias.
func (s *Service) ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error) {
	return s.repo.ExistsByAlimentacion(ctx, alimentacionID)
}

func (s *Service) resolve(ctx context.Context, p Porcino) Detalle {
	d := Detalle{Porcino: p}
	if c, err := s.clientes.GetByID(ctx, p.ClienteID); err == nil {
		d.Cliente = &c
	}
	if a, err := s.alimentaciones.GetByID(ctx, p.AlimentacionID); err == nil {
		d.Alimentacion = &a
	}
	return d
}

func (s *Service) checkCliente(ctx context.Context, clienteID string) error {
	if clienteID == "" {
		return ErrClienteNoExiste
	}
	if _, err := s.clientes.GetByID(ctx, clienteID); err != nil {
		if errors.Is(err, clientes.ErrNotFound) {
			return ErrClienteNoExiste
		}
		return err
	}
	return nil
}

func (s *Service) checkAlimentacion(ctx context.Context, alimentacionID string) error {
	if alimentacionID == "" {
		return ErrAlimentacionNoExiste
	}
	if _, err := s.alimentaciones.GetByID(ctx, alimentacionID); err != nil {
		if errors.Is(err, alimentaciones.ErrNotFound) {
			return ErrAlimentacionNoExiste
		}
		return err
	}
	return nil
}
