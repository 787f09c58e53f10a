package farm

import "context"

type FarmRepository interface {
	Create(ctx context.Context, f Farm) (Farm, error)
	GetByID(ctx context.Context, id string) (Farm, error)
	ListActive(ctx context.Context) ([]Farm, error)
}
