package http

import (
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	LoginManager(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// LoginManager handles POST /auth/manager
func (h *authHandlerImpl) LoginManager(w http.ResponseWriter, r *http.Request) {
	var req auth.ManagerLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authService.LoginManager(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager access granted", result)
}
