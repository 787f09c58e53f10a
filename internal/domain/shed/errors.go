package shed

import (
	"errors"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var (
	ErrShedNotFound        = apperror.New(apperror.CodeNotFound, "shed not found", http.StatusNotFound)
	ErrInvalidStatusChange = apperror.New(apperror.CodeInvalidState, "invalid status change", http.StatusBadRequest)
	ErrShedNotInProduction = apperror.New(apperror.CodeInvalidState, "generation data can only change while the shed is in production", http.StatusBadRequest)
	ErrShedNumberExhausted = apperror.New(apperror.CodeConflict, "could not assign a shed number, try again", http.StatusConflict)

	// ErrShedNumberTaken is returned by the repository when (farm, number) is already used.
	ErrShedNumberTaken = errors.New("shed number already taken")
)
