package bonus

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrBonusNotFound         = apperror.New(apperror.CodeNotFound, "bonus not found", http.StatusNotFound)
	ErrBonusKeyExists        = apperror.New(apperror.CodeConflict, "a bonus with this key already exists", http.StatusConflict)
	ErrCatalogBonusNotFound  = apperror.New(apperror.CodeNotFound, "catalog bonus not found", http.StatusNotFound)
	ErrPersonalBonusNotFound = apperror.New(apperror.CodeNotFound, "personal bonus not found", http.StatusNotFound)
	ErrPersonalBonusExists   = apperror.New(apperror.CodeConflict, "employee already has a personal bonus for this entity", http.StatusConflict)
)
