package overtime

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var maxHours = decimal.NewFromInt(24)

type CreateOvertimeRequest struct {
	EmployeeCode string          `json:"employeeCode"`
	StartTime    string          `json:"startTime"`
	Hours        decimal.Decimal `json:"hours"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employeeCode", Message: "employeeCode is required"})
	}
	if _, ok := validator.IsValidDateTime(r.StartTime, nil); !ok {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "startTime must use YYYY-MM-DD HH:mm:ss"})
	}
	if !r.Hours.IsPositive() || r.Hours.GreaterThan(maxHours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be greater than 0 and at most 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeFilter struct {
	EmployeeCode *string
	From         *string
	To           *string
}

type OvertimeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employeeCode"`
	StartTime    string          `json:"startTime"`
	Hours        decimal.Decimal `json:"hours"`
}

func NewOvertimeResponse(o Overtime) OvertimeResponse {
	return OvertimeResponse{
		ID:           o.ID,
		EmployeeCode: o.EmployeeCode,
		StartTime:    o.StartTime.Format(timeutil.DateTimeLayout),
		Hours:        o.Hours,
	}
}
