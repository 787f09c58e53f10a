package employee

import (
	"strings"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type CreateEmployeeRequest struct {
	Code           string          `json:"code" validate:"required,max=20"`
	Name           string          `json:"name" validate:"required,max=100"`
	LastName       string          `json:"lastName" validate:"max=100"`
	SecondLastName string          `json:"secondLastName" validate:"max=100"`
	JobName        string          `json:"jobName" validate:"max=100"`
	DepartmentName string          `json:"departmentName" validate:"max=100"`
	DailySalary    decimal.Decimal `json:"dailySalary"`
	JobScheme      JobScheme       `json:"jobScheme" validate:"required,oneof=5 6"`
	Schedule       Schedule        `json:"schedule"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if r.Code != "" && !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code may only contain letters, digits and dashes"})
	}
	if !r.DailySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "dailySalary", Message: "dailySalary must be greater than zero"})
	}
	errs = append(errs, validateSchedule(r.Schedule)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             string           `json:"-"`
	Name           *string          `json:"name,omitempty"`
	LastName       *string          `json:"lastName,omitempty"`
	SecondLastName *string          `json:"secondLastName,omitempty"`
	JobName        *string          `json:"jobName,omitempty"`
	DepartmentName *string          `json:"departmentName,omitempty"`
	DailySalary    *decimal.Decimal `json:"dailySalary,omitempty"`
	JobScheme      *JobScheme       `json:"jobScheme,omitempty"`
	Schedule       Schedule         `json:"schedule,omitempty"`
	Status         *Status          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.DailySalary != nil && !r.DailySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "dailySalary", Message: "dailySalary must be greater than zero"})
	}
	if r.JobScheme != nil && *r.JobScheme != SchemeFiveDays && *r.JobScheme != SchemeSixDays {
		errs = append(errs, validator.ValidationError{Field: "jobScheme", Message: "jobScheme must be '5' or '6'"})
	}
	if r.Status != nil && *r.Status != StatusActive && *r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be ACTIVE or INACTIVE"})
	}
	errs = append(errs, validateSchedule(r.Schedule)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateSchedule(s Schedule) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for day, shift := range s {
		field := "schedule." + day
		if !validator.IsInSlice(strings.ToLower(day), weekdays) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "unknown weekday"})
			continue
		}
		if shift == nil {
			continue
		}
		if !validator.IsValidClock(shift.Start) || !validator.IsValidClock(shift.End) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "start and end must use HH:MM"})
		}
	}
	return errs
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	LastName       string          `json:"lastName"`
	SecondLastName string          `json:"secondLastName"`
	FullName       string          `json:"fullName"`
	JobName        string          `json:"jobName"`
	DepartmentName string          `json:"departmentName"`
	DailySalary    decimal.Decimal `json:"dailySalary"`
	JobScheme      JobScheme       `json:"jobScheme"`
	Schedule       Schedule        `json:"schedule"`
	Status         Status          `json:"status"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Code:           e.Code,
		Name:           e.Name,
		LastName:       e.LastName,
		SecondLastName: e.SecondLastName,
		FullName:       e.FullName(),
		JobName:        e.JobName,
		DepartmentName: e.DepartmentName,
		DailySalary:    e.DailySalary,
		JobScheme:      e.JobScheme,
		Schedule:       e.Schedule,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      e.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
