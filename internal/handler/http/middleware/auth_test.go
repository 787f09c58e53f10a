package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(svc jwt.Service) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(ok))
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("secret")
	handler := protected(svc)

	valid, _, err := svc.GenerateAccessToken("admin", time.Hour)
	require.NoError(t, err)
	_, refresh, err := svc.JWTAuth().Encode(map[string]interface{}{"sub": "admin", "type": "refresh"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid access token", header: "Bearer " + valid, want: http.StatusNoContent},
		{name: "missing token", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", want: http.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + refresh, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	assert.True(t, errors.Is(errInvalidToken, apperror.ErrUnauthorized))
	assert.Equal(t, http.StatusUnauthorized, errInvalidToken.HTTPStatus)
	assert.Equal(t, apperror.CodeUnauthorized, errInvalidToken.Code)
}
