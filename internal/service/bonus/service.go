package bonus

import (
	"context"
	"log/slog"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
)

type BonusServiceImpl struct {
	bonusRepo    bonus.BonusRepository
	catalogRepo  bonus.CatalogBonusRepository
	personalRepo bonus.PersonalBonusRepository
	employeeRepo employee.EmployeeRepository
}

func NewBonusService(
	bonusRepo bonus.BonusRepository,
	catalogRepo bonus.CatalogBonusRepository,
	personalRepo bonus.PersonalBonusRepository,
	employeeRepo employee.EmployeeRepository,
) bonus.BonusService {
	return &BonusServiceImpl{
		bonusRepo:    bonusRepo,
		catalogRepo:  catalogRepo,
		personalRepo: personalRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== GENERAL BONUSES ==========

// CreateBonus implements bonus.BonusService.
func (s *BonusServiceImpl) CreateBonus(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.BonusResponse{}, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	created, err := s.bonusRepo.Create(ctx, bonus.Bonus{
		Key:     req.Key,
		Name:    req.Name,
		Type:    req.Type,
		Value:   req.Value,
		Enabled: enabled,
	})
	if err != nil {
		return bonus.BonusResponse{}, err
	}

	slog.InfoContext(ctx, "bonus created", "bonus_id", created.ID, "key", created.Key)
	return bonus.NewBonusResponse(created), nil
}

// ListBonuses implements bonus.BonusService.
func (s *BonusServiceImpl) ListBonuses(ctx context.Context) ([]bonus.BonusResponse, error) {
	bonuses, err := s.bonusRepo.ListActive(ctx, false)
	if err != nil {
		return nil, err
	}
	result := make([]bonus.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		result = append(result, bonus.NewBonusResponse(b))
	}
	return result, nil
}

// UpdateBonus implements bonus.BonusService.
func (s *BonusServiceImpl) UpdateBonus(ctx context.Context, req bonus.UpdateBonusRequest) (bonus.BonusResponse, error) {
	b, err := s.bonusRepo.GetByID(ctx, req.ID)
	if err != nil {
		return bonus.BonusResponse{}, err
	}
	if err := req.Apply(&b); err != nil {
		return bonus.BonusResponse{}, err
	}

	updated, err := s.bonusRepo.Update(ctx, b)
	if err != nil {
		return bonus.BonusResponse{}, err
	}
	return bonus.NewBonusResponse(updated), nil
}

// DeleteBonus implements bonus.BonusService.
func (s *BonusServiceImpl) DeleteBonus(ctx context.Context, id string) error {
	return s.bonusRepo.SoftDelete(ctx, id)
}

// ========== CATALOG ==========

// CreateCatalogBonus implements bonus.BonusService.
func (s *BonusServiceImpl) CreateCatalogBonus(ctx context.Context, req bonus.CreateCatalogBonusRequest) (bonus.CatalogBonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.CatalogBonusResponse{}, err
	}

	created, err := s.catalogRepo.Create(ctx, bonus.CatalogBonus{
		Name:        req.Name,
		Description: req.Description,
		Taxable:     req.Taxable,
	})
	if err != nil {
		return bonus.CatalogBonusResponse{}, err
	}
	return bonus.NewCatalogBonusResponse(created), nil
}

// ListCatalogBonuses implements bonus.BonusService.
func (s *BonusServiceImpl) ListCatalogBonuses(ctx context.Context) ([]bonus.CatalogBonusResponse, error) {
	entries, err := s.catalogRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]bonus.CatalogBonusResponse, 0, len(entries))
	for _, c := range entries {
		result = append(result, bonus.NewCatalogBonusResponse(c))
	}
	return result, nil
}

// ========== PERSONAL BONUSES ==========

// CreatePersonalBonus implements bonus.BonusService.
func (s *BonusServiceImpl) CreatePersonalBonus(ctx context.Context, req bonus.CreatePersonalBonusRequest) (bonus.PersonalBonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.PersonalBonusResponse{}, err
	}

	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return bonus.PersonalBonusResponse{}, err
	}
	if err := s.ensureEntity(ctx, req.EntityType, req.EntityID); err != nil {
		return bonus.PersonalBonusResponse{}, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	created, err := s.personalRepo.Create(ctx, bonus.PersonalBonus{
		EmployeeCode: req.EmployeeCode,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		Type:         req.Type,
		Value:        req.Value,
		Enabled:      enabled,
	})
	if err != nil {
		return bonus.PersonalBonusResponse{}, err
	}

	slog.InfoContext(ctx, "personal bonus created",
		"personal_bonus_id", created.ID,
		"employee_code", created.EmployeeCode,
		"entity_type", created.EntityType,
	)
	return s.personalResponse(ctx, created.ID)
}

// ensureEntity checks that the parent of a personal bonus exists.
func (s *BonusServiceImpl) ensureEntity(ctx context.Context, entityType bonus.EntityType, id string) error {
	switch entityType {
	case bonus.EntityBonus:
		_, err := s.bonusRepo.GetByID(ctx, id)
		return err
	default:
		_, err := s.catalogRepo.GetByID(ctx, id)
		return err
	}
}

// ListPersonalBonuses implements bonus.BonusService.
func (s *BonusServiceImpl) ListPersonalBonuses(ctx context.Context, filter bonus.PersonalBonusFilter) ([]bonus.PersonalBonusResponse, error) {
	personal, err := s.personalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]bonus.PersonalBonusResponse, 0, len(personal))
	for _, p := range personal {
		result = append(result, bonus.NewPersonalBonusResponse(p))
	}
	return result, nil
}

// UpdatePersonalBonus implements bonus.BonusService.
func (s *BonusServiceImpl) UpdatePersonalBonus(ctx context.Context, req bonus.UpdatePersonalBonusRequest) (bonus.PersonalBonusResponse, error) {
	p, err := s.personalRepo.GetByID(ctx, req.ID)
	if err != nil {
		return bonus.PersonalBonusResponse{}, err
	}
	if err := req.Apply(&p); err != nil {
		return bonus.PersonalBonusResponse{}, err
	}
	if _, err := s.personalRepo.Update(ctx, p); err != nil {
		return bonus.PersonalBonusResponse{}, err
	}
	return s.personalResponse(ctx, p.ID)
}

// DeletePersonalBonus implements bonus.BonusService.
func (s *BonusServiceImpl) DeletePersonalBonus(ctx context.Context, id string) error {
	return s.personalRepo.SoftDelete(ctx, id)
}

// personalResponse reloads the row so joined catalog fields are populated.
func (s *BonusServiceImpl) personalResponse(ctx context.Context, id string) (bonus.PersonalBonusResponse, error) {
	p, err := s.personalRepo.GetByID(ctx, id)
	if err != nil {
		return bonus.PersonalBonusResponse{}, err
	}
	return bonus.NewPersonalBonusResponse(p), nil
}
