package middleware

import (
	"log/slog"
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose verified token is missing, invalid or
// not an access token. It expects jwtauth.Verifier earlier in the chain.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				slog.Debug("manager token rejected", "path", r.URL.Path, "error", err)
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != jwt.TokenTypeAccess {
				slog.Debug("manager token has wrong type", "path", r.URL.Path, "type", claims["type"])
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
