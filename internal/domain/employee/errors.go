package employee

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrEmployeeNotFound   = apperror.New(apperror.CodeNotFound, "employee not found", http.StatusNotFound)
	ErrEmployeeCodeExists = apperror.New(apperror.CodeConflict, "employee code already exists", http.StatusConflict)
)
