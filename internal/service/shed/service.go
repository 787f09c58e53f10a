package shed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/farm"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/shed"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/observability"
	"github.com/google/uuid"
)

// maxNumberAttempts bounds the shed-number retry loop when concurrent creates collide.
const maxNumberAttempts = 5

type ShedServiceImpl struct {
	shedRepo    shed.ShedRepository
	historyRepo shed.HistoryRepository
	farmRepo    farm.FarmRepository
	metrics     *observability.Metrics
}

func NewShedService(
	shedRepo shed.ShedRepository,
	historyRepo shed.HistoryRepository,
	farmRepo farm.FarmRepository,
	metrics *observability.Metrics,
) shed.ShedService {
	return &ShedServiceImpl{
		shedRepo:    shedRepo,
		historyRepo: historyRepo,
		farmRepo:    farmRepo,
		metrics:     metrics,
	}
}

// CreateShed implements shed.ShedService.
func (s *ShedServiceImpl) CreateShed(ctx context.Context, req shed.CreateShedRequest) (shed.Shed, error) {
	if err := req.Validate(); err != nil {
		return shed.Shed{}, err
	}
	if _, err := s.farmRepo.GetByID(ctx, req.FarmID); err != nil {
		return shed.Shed{}, err
	}

	number, err := s.shedRepo.NextShedNumber(ctx, req.FarmID)
	if err != nil {
		return shed.Shed{}, fmt.Errorf("failed to get next shed number: %w", err)
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		created, err := s.shedRepo.Create(ctx, shed.Shed{
			FarmID:      req.FarmID,
			ShedNumber:  number,
			Name:        req.Name,
			Description: req.Description,
			Status:      shed.StatusInactive,
		})
		if errors.Is(err, shed.ErrShedNumberTaken) {
			number++
			continue
		}
		if err != nil {
			return shed.Shed{}, err
		}

		slog.InfoContext(ctx, "shed created", "shed_id", created.ID, "farm_id", created.FarmID, "shed_number", created.ShedNumber)
		return created, nil
	}

	slog.WarnContext(ctx, "shed number retries exhausted", "farm_id", req.FarmID, "last_number", number)
	return shed.Shed{}, shed.ErrShedNumberExhausted
}

// GetShed implements shed.ShedService.
func (s *ShedServiceImpl) GetShed(ctx context.Context, id string) (shed.Shed, error) {
	return s.shedRepo.GetByID(ctx, id)
}

// ListSheds implements shed.ShedService.
func (s *ShedServiceImpl) ListSheds(ctx context.Context, farmID string) ([]shed.Shed, error) {
	if _, err := s.farmRepo.GetByID(ctx, farmID); err != nil {
		return nil, err
	}
	return s.shedRepo.ListByFarm(ctx, farmID)
}

// InitializeShed implements shed.ShedService.
func (s *ShedServiceImpl) InitializeShed(ctx context.Context, req shed.InitializeShedRequest) (shed.Shed, error) {
	if err := req.Validate(); err != nil {
		return shed.Shed{}, err
	}

	current, err := s.shedRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shed.Shed{}, err
	}
	if current.Status != shed.StatusReadyToProduction {
		return shed.Shed{}, invalidChange(current.Status, shed.StatusProduction)
	}

	generation, err := uuid.NewV7()
	if err != nil {
		return shed.Shed{}, fmt.Errorf("failed to generate generation id: %w", err)
	}
	generationID := generation.String()
	ageWeeks := req.AgeWeeks

	current.ResetGeneration()
	current.InitialChicken = req.InitialChicken
	current.AgeWeeks = &ageWeeks
	current.GenerationID = &generationID
	current.Status = shed.StatusProduction

	updated, err := s.shedRepo.Update(ctx, current)
	if err != nil {
		return shed.Shed{}, err
	}

	s.metrics.ShedTransition(string(shed.StatusReadyToProduction), string(shed.StatusProduction))
	slog.InfoContext(ctx, "shed initialized",
		"shed_id", updated.ID,
		"generation_id", generationID,
		"initial_chicken", req.InitialChicken,
	)
	return updated, nil
}

// ChangeStatus implements shed.ShedService. readyToProduction -> production goes through InitializeShed.
func (s *ShedServiceImpl) ChangeStatus(ctx context.Context, req shed.ChangeStatusRequest) (shed.Shed, error) {
	if err := req.Validate(); err != nil {
		return shed.Shed{}, err
	}

	current, err := s.shedRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shed.Shed{}, err
	}

	from, to := current.Status, req.Status
	if !shed.CanTransition(from, to) || to == shed.StatusProduction {
		return shed.Shed{}, invalidChange(from, to)
	}

	if from == shed.StatusProduction && to == shed.StatusInactive {
		if _, err := s.historyRepo.Create(ctx, shed.History{
			ShedID:       current.ID,
			GenerationID: current.GenerationID,
			Reason:       shed.ReasonGenerationClosed,
			Snapshot:     current,
		}); err != nil {
			return shed.Shed{}, err
		}
		current.ResetGeneration()
	}
	current.Status = to

	updated, err := s.shedRepo.Update(ctx, current)
	if err != nil {
		return shed.Shed{}, err
	}

	s.metrics.ShedTransition(string(from), string(to))
	slog.InfoContext(ctx, "shed status changed", "shed_id", updated.ID, "from", from, "to", to)
	return updated, nil
}

func invalidChange(from, to shed.Status) error {
	return apperror.Withf(shed.ErrInvalidStatusChange, "invalid status change from %s to %s", from, to)
}

// UpdateShed implements shed.ShedService.
func (s *ShedServiceImpl) UpdateShed(ctx context.Context, req shed.UpdateShedRequest) (shed.Shed, error) {
	if err := req.Validate(); err != nil {
		return shed.Shed{}, err
	}

	current, err := s.shedRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shed.Shed{}, err
	}
	if req.TouchesCounters() && current.Status != shed.StatusProduction {
		return shed.Shed{}, shed.ErrShedNotInProduction
	}

	if _, err := s.historyRepo.Create(ctx, shed.History{
		ShedID:       current.ID,
		GenerationID: current.GenerationID,
		Reason:       shed.ReasonUpdate,
		Snapshot:     current,
	}); err != nil {
		return shed.Shed{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Mortality != nil {
		current.Mortality = *req.Mortality
	}
	if req.FoodConsumed != nil {
		current.FoodConsumed = *req.FoodConsumed
	}
	if req.WaterConsumed != nil {
		current.WaterConsumed = *req.WaterConsumed
	}
	if req.EggProduction != nil {
		current.EggProduction = *req.EggProduction
	}
	if req.AgeWeeks != nil {
		ageWeeks := *req.AgeWeeks
		current.AgeWeeks = &ageWeeks
	}

	return s.shedRepo.Update(ctx, current)
}

// GetHistory implements shed.ShedService.
func (s *ShedServiceImpl) GetHistory(ctx context.Context, id string) ([]shed.HistoryResponse, error) {
	if _, err := s.shedRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	history, err := s.historyRepo.ListByShed(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]shed.HistoryResponse, 0, len(history))
	for _, h := range history {
		result = append(result, shed.NewHistoryResponse(h))
	}
	return result, nil
}
