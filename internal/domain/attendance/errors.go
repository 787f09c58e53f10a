package attendance

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(apperror.CodeNotFound, "attendance not found", http.StatusNotFound)
	ErrAlreadyCheckedIn   = apperror.New(apperror.CodeConflict, "employee already has an attendance for this day", http.StatusConflict)
	ErrAbsenceSameDay     = apperror.New(apperror.CodeConflict, "employee has an absence registered for this day", http.StatusConflict)
)
