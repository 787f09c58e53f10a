package farm

import "context"

type FarmService interface {
	CreateFarm(ctx context.Context, req CreateFarmRequest) (FarmResponse, error)
	GetFarm(ctx context.Context, id string) (FarmResponse, error)
	ListFarms(ctx context.Context) ([]FarmResponse, error)
}
