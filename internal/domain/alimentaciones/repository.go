package alimentaciones

import "context"

type Repository interface {
	Create(ctx context.Context, a Alimentacion) error
	GetByID(ctx context.Context, id string) (Alimentacion, error)
	List(ctx context.Context) ([]Alimentacion, error)
	Update(ctx context.Context, a Alimentacion) error
	Delete(ctx context.Context, id string) error
}
