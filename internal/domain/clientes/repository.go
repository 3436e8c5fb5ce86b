package clientes

import "context"

type Repository interface {
	Create(ctx context.Context, c Cliente) error
	GetByID(ctx context.Context, id string) (Cliente, error)
	GetByCedula(ctx context.Context, cedula string) (Cliente, error)
	List(ctx context.Context) ([]Cliente, error)
	Update(ctx context.Context, c Cliente) error
	Delete(ctx context.Context, id string) error
}
