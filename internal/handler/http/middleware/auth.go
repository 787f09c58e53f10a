package middleware

import (
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

var errInvalidToken = apperror.Withf(apperror.ErrUnauthorized, "invalid or missing access token")

// AuthRequired rejects requests whose verified token is missing or not an access token.
// It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, errInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != jwt.TokenTypeAccess {
				response.HandleError(w, errInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
