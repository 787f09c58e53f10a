package farm

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
)

var ErrFarmNotFound = apperror.New(apperror.CodeNotFound, "farm not found", http.StatusNotFound)
