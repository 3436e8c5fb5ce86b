package clientes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("Cliente no encontrado")

// ValidationError lleva el mensaje exacto que ve el usuario.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	ErrCamposObligatorios = ValidationError("Cédula, nombres y apellidos son obligatorios.")
	ErrCedulaDuplicada    = ValidationError("La cédula ya está registrada")
)

// PorcinosRepo es lo que clientes necesita del almacenamiento de porcinos
// para la cascada de borrado. Se declara aquí para evitar ciclos de imports.
type PorcinosRepo interface {
	DeleteByCliente(ctx context.Context, clienteID string) error
}

type Service struct {
	repo     Repository
	porcinos PorcinosRepo
	now      func() time.Time
}

func NewService(repo Repository, porcinos PorcinosRepo) *Service {
	return &Service{
		repo:     repo,
		porcinos: porcinos,
		now:      time.Now,
	}
}

type CreateInput struct {
	Cedula    string
	Nombres   string
	Apellidos string
	Direccion string
	Telefono  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Cliente, error) {
	cedula := strings.TrimSpace(in.Cedula)
	nombres := strings.TrimSpace(in.Nombres)
	apellidos := strings.TrimSpace(in.Apellidos)

	if cedula == "" || nombres == "" || apellidos == "" {
		return Cliente{}, ErrCamposObligatorios
	}

	// Pre-chequeo amigable; el índice único del almacén es quien
	// garantiza la invariante ante escrituras concurrentes.
	if _, err := s.repo.GetByCedula(ctx, cedula); err == nil {
		return Cliente{}, ErrCedulaDuplicada
	} else if !errors.Is(err, ErrNotFound) {
		return Cliente{}, err
	}

	now := s.now()
	c := Cliente{
		ID:        uuid.NewString(),
		Cedula:    cedula,
		Nombres:   nombres,
		Apellidos: apellidos,
		Direccion: strings.TrimSpace(in.Direccion),
		Telefono:  strings.TrimSpace(in.Telefono),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cliente{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Cliente{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByCedula(ctx context.Context, cedula string) (Cliente, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return Cliente{}, ErrNotFound
	}
	return s.repo.GetByCedula(ctx, cedula)
}

func (s *Service) List(ctx context.Context) ([]Cliente, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Cedula    *string
	Nombres   *string
	Apellidos *string
	Direccion *string
	Telefono  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Cliente, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cliente{}, err
	}

	if in.Cedula != nil {
		cedula := strings.TrimSpace(*in.Cedula)
		if cedula == "" {
			return Cliente{}, ErrCamposObligatorios
		}
		if cedula != c.Cedula {
			if _, err := s.repo.GetByCedula(ctx, cedula); err == nil {
				return Cliente{}, ErrCedulaDuplicada
			} else if !errors.Is(err, ErrNotFound) {
				return Cliente{}, err
			}
		}
		c.Cedula = cedula
	}
	if in.Nombres != nil {
		if strings.TrimSpace(*in.Nombres) == "" {
			return Cliente{}, ErrCamposObligatorios
		}
		c.Nombres = strings.TrimSpace(*in.Nombres)
	}
	if in.Apellidos != nil {
		if strings.TrimSpace(*in.Apellidos) == "" {
			return Cliente{}, ErrCamposObligatorios
		}
		c.Apellidos = strings.TrimSpace(*in.Apellidos)
	}
	if in.Direccion != nil {
		c.Direccion = strings.TrimSpace(*in.Direccion)
	}
	if in.Telefono != nil {
		c.Telefono = strings.TrimSpace(*in.Telefono)
	}

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return Cliente{}, err
	}
	return c, nil
}

// Delete borra el cliente y después sus porcinos (cascada manual).
// Los dos pasos no son atómicos: si el segundo falla el cliente ya no
// existe y quedan porcinos huérfanos. Es el mismo contrato del sistema
// original y queda documentado en lugar de ocultarse.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.porcinos.DeleteByCliente(ctx, id)
}
