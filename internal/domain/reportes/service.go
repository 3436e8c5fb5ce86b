package reportes

import (
	"context"

	"granja-porcina/internal/domain/alimentaciones"
	"granja-porcina/internal/domain/clientes"
	"granja-porcina/internal/domain/porcinos"
)

// Reporte es un cliente con sus porcinos, cada uno enriquecido con el
// objeto completo de su alimentación (no solo la referencia).
type Reporte struct {
	Cliente  clientes.Cliente
	Porcinos []Entrada
}

type Entrada struct {
	Porcino    porcinos.Porcino
	RazaNombre string
	// Nil si la referencia quedó huérfana; el render lo tolera.
	Alimentacion *alimentaciones.Alimentacion
}

// Service compone los datos del reporte; el formato (JSON o PDF) es
// responsabilidad del caller.
type Service struct {
	clientes       clientes.Repository
	porcinos       porcinos.Repository
	alimentaciones alimentaciones.Repository
}

func NewService(cli clientes.Repository, porc porcinos.Repository, alim alimentaciones.Repository) *Service {
	return &Service{
		clientes:       cli,
		porcinos:       porc,
		alimentaciones: alim,
	}
}

// PorCedula arma el reporte de un cliente buscado por cédula.
// Devuelve clientes.ErrNotFound si la cédula no existe.
func (s *Service) PorCedula(ctx context.Context, cedula string) (Reporte, error) {
	c, err := s.clientes.GetByCedula(ctx, cedula)
	if err != nil {
		return Reporte{}, err
	}
	return s.build(ctx, c)
}

// General arma un reporte por cada cliente. Cada entrada se calcula de
// forma independiente, sin transacción compartida: mutaciones
// concurrentes pueden verse reflejadas a medias entre clientes.
func (s *Service) General(ctx context.Context) ([]Reporte, error) {
	cs, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Reporte, 0, len(cs))
	for _, c := range cs {
		r, err := s.build(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Service) build(ctx context.Context, c clientes.Cliente) (Reporte, error) {
	ps, err := s.porcinos.ListByCliente(ctx, c.ID)
	if err != nil {
		return Reporte{}, err
	}

	entradas := make([]Entrada, 0, len(ps))
	for _, p := range ps {
		e := Entrada{
			Porcino:    p,
			RazaNombre: porcinos.RazaNombre(p.Raza),
		}
		if a, err := s.alimentaciones.GetByID(ctx, p.AlimentacionID); err == nil {
			e.Alimentacion = &a
		}
		entradas = append(entradas, e)
	}

	return Reporte{Cliente: c, Porcinos: entradas}, nil
}
