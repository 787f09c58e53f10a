package absence

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrAbsenceNotFound   = apperror.New(apperror.CodeNotFound, "absence not found", http.StatusNotFound)
	ErrAbsenceExists     = apperror.New(apperror.CodeConflict, "employee already has an absence for this day", http.StatusConflict)
	ErrAttendanceSameDay = apperror.New(apperror.CodeConflict, "employee has an attendance registered for this day", http.StatusConflict)
)
