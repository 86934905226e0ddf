package middleware

import (
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires a token issued by the manager PIN login
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrManagerRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != jwt.RoleManager {
			response.HandleError(w, auth.ErrManagerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
