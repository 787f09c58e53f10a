package payroll

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrInvalidDate       = apperror.New(apperror.CodeInvalidInput, "invalid date", http.StatusBadRequest)
	ErrInvalidWeekday    = apperror.New(apperror.CodeInvalidInput, "week start date must be a Wednesday", http.StatusBadRequest)
	ErrPayrollNotFound   = apperror.New(apperror.CodeNotFound, "payroll not found", http.StatusNotFound)
	ErrPayrollExists     = apperror.New(apperror.CodeConflict, "a payroll already exists for this week", http.StatusConflict)
	ErrPayrollInProgress = apperror.New(apperror.CodeConflict, "a payroll run for this week is already in progress", http.StatusConflict)
)
