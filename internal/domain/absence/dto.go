package absence

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	EmployeeCode string `json:"employeeCode" validate:"required"`
	Date         string `json:"date" validate:"required"`
	IsJustified  bool   `json:"isJustified"`
	Reason       string `json:"reason" validate:"max=255"`
	IsPaid       bool   `json:"isPaid"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date, nil); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must use YYYY-MM-DD"})
		}
	}
	if r.IsJustified && validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required for a justified absence"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceFilter struct {
	EmployeeCode *string
	From         *string
	To           *string
}

type AbsenceResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Date         string `json:"date"`
	IsJustified  bool   `json:"isJustified"`
	Reason       string `json:"reason"`
	IsPaid       bool   `json:"isPaid"`
}

func NewAbsenceResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:           a.ID,
		EmployeeCode: a.EmployeeCode,
		Date:         a.Date.Format(timeutil.DateLayout),
		IsJustified:  a.IsJustified,
		Reason:       a.Reason,
		IsPaid:       a.IsPaid,
	}
}
