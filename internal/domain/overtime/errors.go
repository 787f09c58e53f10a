package overtime

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrOvertimeNotFound = apperror.New(apperror.CodeNotFound, "overtime not found", http.StatusNotFound)
	ErrOvertimeExists   = apperror.New(apperror.CodeConflict, "overtime already registered for this employee and start time", http.StatusConflict)
)
