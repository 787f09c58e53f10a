package shed

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateShedRequest struct {
	FarmID      string `json:"farmId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateShedRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.FarmID) {
		errs = append(errs, validator.ValidationError{Field: "farmId", Message: "farmId must be a valid id"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InitializeShedRequest struct {
	ID             string `json:"-"`
	InitialChicken int    `json:"initialChicken" validate:"gt=0"`
	AgeWeeks       int    `json:"ageWeeks" validate:"gte=0"`
}

func (r *InitializeShedRequest) Validate() error {
	return validator.Struct(r)
}

type ChangeStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *ChangeStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "status must be one of inactive, cleaning, readyToProduction, production"}}
	}
	return nil
}

type UpdateShedRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Mortality     *int             `json:"mortality,omitempty"`
	FoodConsumed  *decimal.Decimal `json:"foodConsumed,omitempty"`
	WaterConsumed *decimal.Decimal `json:"waterConsumed,omitempty"`
	EggProduction *int             `json:"eggProduction,omitempty"`
	AgeWeeks      *int             `json:"ageWeeks,omitempty"`
}

// TouchesCounters reports whether the request changes per-generation data.
func (r *UpdateShedRequest) TouchesCounters() bool {
	return r.Mortality != nil || r.FoodConsumed != nil || r.WaterConsumed != nil ||
		r.EggProduction != nil || r.AgeWeeks != nil
}

func (r *UpdateShedRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	for field, v := range map[string]*int{"mortality": r.Mortality, "eggProduction": r.EggProduction, "ageWeeks": r.AgeWeeks} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be non-negative"})
		}
	}
	for field, v := range map[string]*decimal.Decimal{"foodConsumed": r.FoodConsumed, "waterConsumed": r.WaterConsumed} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryResponse struct {
	ID           string        `json:"id"`
	ShedID       string        `json:"shedId"`
	GenerationID *string       `json:"generationId"`
	Reason       HistoryReason `json:"reason"`
	Snapshot     Shed          `json:"snapshot"`
	CreatedAt    string        `json:"createdAt"`
}

func NewHistoryResponse(h History) HistoryResponse {
	return HistoryResponse{
		ID:           h.ID,
		ShedID:       h.ShedID,
		GenerationID: h.GenerationID,
		Reason:       h.Reason,
		Snapshot:     h.Snapshot,
		CreatedAt:    h.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
