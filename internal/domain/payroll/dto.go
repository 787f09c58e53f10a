package payroll

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ExecutePayrollRequest struct {
	WeekStartDate string `json:"weekStartDate"`
	Preview       bool   `json:"preview"`
}

func (r *ExecutePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekStartDate) {
		errs = append(errs, validator.ValidationError{Field: "weekStartDate", Message: "weekStartDate is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	StartDate  string `json:"startDate"`
	CutoffDate string `json:"cutoffDate"`
	Preview    bool   `json:"preview"`
	Lines      []Line `json:"lines"`
}

func NewPayrollResponse(p Payroll) PayrollResponse {
	lines := p.Lines
	if lines == nil {
		lines = []Line{}
	}
	return PayrollResponse{
		ID:         p.ID,
		Name:       p.Name,
		StartDate:  p.StartDate.Format(timeutil.DateLayout),
		CutoffDate: p.CutoffDate.Format(timeutil.DateTimeLayout),
		Lines:      lines,
	}
}

type PayrollFilter struct {
	Page  int
	Limit int
}

func (f *PayrollFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type PayrollSummaryResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	StartDate     string          `json:"startDate"`
	CutoffDate    string          `json:"cutoffDate"`
	EmployeeCount int             `json:"employeeCount"`
	TotalNetPay   decimal.Decimal `json:"totalNetPay"`
}

type ListPayrollResponse struct {
	Data       []PayrollSummaryResponse `json:"data"`
	TotalCount int64                    `json:"totalCount"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
}
