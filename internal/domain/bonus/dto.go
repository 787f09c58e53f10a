package bonus

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func validateRule(t Type, value decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors
	switch t {
	case TypeAmount, TypePercentage:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be 'amount' or 'percentage'"})
	}
	if value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "value must be non-negative"})
	}
	if t == TypePercentage && value.GreaterThan(hundred) {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "percentage cannot exceed 100"})
	}
	return errs
}

func isKnownKey(k Key) bool {
	for _, known := range Keys {
		if k == known {
			return true
		}
	}
	return false
}

// ========== GENERAL BONUS DTOs ==========

type CreateBonusRequest struct {
	Key     Key             `json:"key"`
	Name    string          `json:"name"`
	Type    Type            `json:"type"`
	Value   decimal.Decimal `json:"value"`
	Enabled *bool           `json:"enabled,omitempty"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !isKnownKey(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "key must be one of overtime, attendance, punctuality, grocery"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	errs = append(errs, validateRule(r.Type, r.Value)...)
	if r.Key == KeyOvertime && r.Type == TypePercentage {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "the overtime bonus is an hourly rate and must be of type 'amount'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBonusRequest struct {
	ID      string           `json:"-"`
	Name    *string          `json:"name,omitempty"`
	Type    *Type            `json:"type,omitempty"`
	Value   *decimal.Decimal `json:"value,omitempty"`
	Enabled *bool            `json:"enabled,omitempty"`
}

// Apply merges the request into b and validates the result.
func (r *UpdateBonusRequest) Apply(b *Bonus) error {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Type != nil {
		b.Type = *r.Type
	}
	if r.Value != nil {
		b.Value = *r.Value
	}
	if r.Enabled != nil {
		b.Enabled = *r.Enabled
	}

	errs := validateRule(b.Type, b.Value)
	if validator.IsEmpty(b.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if b.Key == KeyOvertime && b.Type == TypePercentage {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "the overtime bonus is an hourly rate and must be of type 'amount'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID      string          `json:"id"`
	Key     Key             `json:"key"`
	Name    string          `json:"name"`
	Type    Type            `json:"type"`
	Value   decimal.Decimal `json:"value"`
	Enabled bool            `json:"enabled"`
}

func NewBonusResponse(b Bonus) BonusResponse {
	return BonusResponse{ID: b.ID, Key: b.Key, Name: b.Name, Type: b.Type, Value: b.Value, Enabled: b.Enabled}
}

// ========== CATALOG DTOs ==========

type CreateCatalogBonusRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
	Taxable     bool   `json:"taxable"`
}

func (r *CreateCatalogBonusRequest) Validate() error {
	return validator.Struct(r)
}

type CatalogBonusResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Taxable     bool   `json:"taxable"`
}

func NewCatalogBonusResponse(c CatalogBonus) CatalogBonusResponse {
	return CatalogBonusResponse{ID: c.ID, Name: c.Name, Description: c.Description, Taxable: c.Taxable}
}

// ========== PERSONAL BONUS DTOs ==========

type CreatePersonalBonusRequest struct {
	EmployeeCode string          `json:"employeeCode"`
	EntityType   EntityType      `json:"entityType"`
	EntityID     string          `json:"entityId"`
	Type         Type            `json:"type"`
	Value        decimal.Decimal `json:"value"`
	Enabled      *bool           `json:"enabled,omitempty"`
}

func (r *CreatePersonalBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employeeCode", Message: "employeeCode is required"})
	}
	if r.EntityType != EntityBonus && r.EntityType != EntityCatalogPersonalBonus {
		errs = append(errs, validator.ValidationError{Field: "entityType", Message: "entityType must be 'bonus' or 'catalog-personal-bonus'"})
	}
	if !validator.IsValidUUID(r.EntityID) {
		errs = append(errs, validator.ValidationError{Field: "entityId", Message: "entityId must be a valid id"})
	}
	errs = append(errs, validateRule(r.Type, r.Value)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonalBonusRequest struct {
	ID      string           `json:"-"`
	Type    *Type            `json:"type,omitempty"`
	Value   *decimal.Decimal `json:"value,omitempty"`
	Enabled *bool            `json:"enabled,omitempty"`
}

func (r *UpdatePersonalBonusRequest) Apply(p *PersonalBonus) error {
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Value != nil {
		p.Value = *r.Value
	}
	if r.Enabled != nil {
		p.Enabled = *r.Enabled
	}
	if errs := validateRule(p.Type, p.Value); len(errs) > 0 {
		return errs
	}
	return nil
}

type PersonalBonusFilter struct {
	EmployeeCode *string
	EntityType   *EntityType
}

type PersonalBonusResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employeeCode"`
	EntityType   EntityType      `json:"entityType"`
	EntityID     string          `json:"entityId"`
	Type         Type            `json:"type"`
	Value        decimal.Decimal `json:"value"`
	Enabled      bool            `json:"enabled"`
	Name         string          `json:"name,omitempty"`
	Taxable      bool            `json:"taxable"`
}

func NewPersonalBonusResponse(p PersonalBonus) PersonalBonusResponse {
	return PersonalBonusResponse{
		ID:           p.ID,
		EmployeeCode: p.EmployeeCode,
		EntityType:   p.EntityType,
		EntityID:     p.EntityID,
		Type:         p.Type,
		Value:        p.Value,
		Enabled:      p.Enabled,
		Name:         p.Name,
		Taxable:      p.Taxable,
	}
}
