package porcinos

import "context"

type Repository interface {
	Create(ctx context.Context, p Porcino) error
	GetByID(ctx context.Context, id string) (Porcino, error)
	GetByIdentificacion(ctx context.Context, identificacion string) (Porcino, error)
	List(ctx context.Context) ([]Porcino, error)
	Update(ctx context.Context, p Porcino) error
	Delete(ctx context.Context, id string) error

	ListByCliente(ctx context.Context, clienteID string) ([]Porcino, error)
	// DeleteByCliente borra todos los porcinos del cliente (cascada).
	// No falla si el cliente no tiene porcinos.
	DeleteByCliente(ctx context.Context, clienteID string) error
	ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error)
}
