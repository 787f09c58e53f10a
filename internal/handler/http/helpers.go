package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// inTx runs fn on a transaction that commits when fn succeeds and rolls back otherwise.
func inTx[T any](ctx context.Context, txm database.Transactor, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.Wrap(err, apperror.ErrInvalidInput.Code, "Invalid request format", apperror.ErrInvalidInput.HTTPStatus)
	}
	return nil
}

// idParam returns the {id} path parameter when it is a valid entity id.
func idParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		return "", apperror.ErrInvalidID
	}
	return id, nil
}

// queryPtr returns nil for absent or empty query parameters.
func queryPtr(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}
