package farm

import (
	"context"
	"testing"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/farm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFarmRepo struct {
	farms []farm.Farm
}

func (f *fakeFarmRepo) Create(_ context.Context, newFarm farm.Farm) (farm.Farm, error) {
	newFarm.ID = "farm-1"
	newFarm.Active = true
	f.farms = append(f.farms, newFarm)
	return newFarm, nil
}

func (f *fakeFarmRepo) GetByID(_ context.Context, id string) (farm.Farm, error) {
	for _, existing := range f.farms {
		if existing.ID == id {
			return existing, nil
		}
	}
	return farm.Farm{}, farm.ErrFarmNotFound
}

func (f *fakeFarmRepo) ListActive(context.Context) ([]farm.Farm, error) {
	return f.farms, nil
}

func TestFarmService(t *testing.T) {
	svc := NewFarmService(&fakeFarmRepo{})
	ctx := context.Background()

	_, err := svc.CreateFarm(ctx, farm.CreateFarmRequest{})
	assert.Error(t, err)

	created, err := svc.CreateFarm(ctx, farm.CreateFarmRequest{Name: "Granja Norte"})
	require.NoError(t, err)
	assert.Equal(t, farm.FarmResponse{ID: "farm-1", Name: "Granja Norte"}, created)

	got, err := svc.GetFarm(ctx, "farm-1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetFarm(ctx, "farm-2")
	assert.ErrorIs(t, err, farm.ErrFarmNotFound)

	list, err := svc.ListFarms(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
