package farm

import (
	"context"
	"log/slog"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/farm"
)

type FarmServiceImpl struct {
	farmRepo farm.FarmRepository
}

func NewFarmService(farmRepo farm.FarmRepository) farm.FarmService {
	return &FarmServiceImpl{farmRepo: farmRepo}
}

func (s *FarmServiceImpl) CreateFarm(ctx context.Context, req farm.CreateFarmRequest) (farm.FarmResponse, error) {
	if err := req.Validate(); err != nil {
		return farm.FarmResponse{}, err
	}
	created, err := s.farmRepo.Create(ctx, farm.Farm{Name: req.Name})
	if err != nil {
		return farm.FarmResponse{}, err
	}
	slog.InfoContext(ctx, "farm created", "farm_id", created.ID)
	return farm.NewFarmResponse(created), nil
}

func (s *FarmServiceImpl) GetFarm(ctx context.Context, id string) (farm.FarmResponse, error) {
	f, err := s.farmRepo.GetByID(ctx, id)
	if err != nil {
		return farm.FarmResponse{}, err
	}
	return farm.NewFarmResponse(f), nil
}

func (s *FarmServiceImpl) ListFarms(ctx context.Context) ([]farm.FarmResponse, error) {
	farms, err := s.farmRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]farm.FarmResponse, 0, len(farms))
	for _, f := range farms {
		result = append(result, farm.NewFarmResponse(f))
	}
	return result, nil
}
