package alimentaciones

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("Alimentación no encontrada")

// ValidationError lleva el mensaje exacto que ve el usuario.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	ErrDescripcionObligatoria = ValidationError("La descripción es obligatoria.")
	ErrAsignada               = ValidationError("La alimentación está asignada a uno o más porcinos.")
)

// Referencias expone lo mínimo que este módulo necesita saber del módulo
// porcinos (se declara aquí para evitar ciclos de imports).
type Referencias interface {
	ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error)
}

type Service struct {
	repo     Repository
	porcinos Referencias
	now      func() time.Time
}

func NewService(repo Repository, porcinos Referencias) *Service {
	return &Service{
		repo:     repo,
		porcinos: porcinos,
		now:      time.Now,
	}
}

type CreateInput struct {
	Descripcion string
	Dosis       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Alimentacion, error) {
	if strings.TrimSpace(in.Descripcion) == "" {
		return Alimentacion{}, ErrDescripcionObligatoria
	}

	now := s.now()
	a := Alimentacion{
		ID:          uuid.NewString(),
		Descripcion: strings.TrimSpace(in.Descripcion),
		Dosis:       strings.TrimSpace(in.Dosis),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Alimentacion{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Alimentacion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Alimentacion{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Alimentacion, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Descripcion *string
	Dosis       *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Alimentacion, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Alimentacion{}, err
	}

	if in.Descripcion != nil {
		if strings.TrimSpace(*in.Descripcion) == "" {
			return Alimentacion{}, ErrDescripcionObligatoria
		}
		a.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.Dosis != nil {
		a.Dosis = strings.TrimSpace(*in.Dosis)
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Alimentacion{}, err
	}
	return a, nil
}

// Delete rechaza el borrado mientras algún porcino referencie el plan.
// El modelo exige alimentacionId en todo porcino, así que permitir el
// borrado dejaría referencias huérfanas imposibles de representar.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.porcinos.ExistsByAlimentacion(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrAsignada
	}

	return s.repo.Delete(ctx, id)
}
