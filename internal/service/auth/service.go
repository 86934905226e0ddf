package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwt.Service
	managerPINHash []byte
}

func NewAuthService(jwtService jwt.Service, managerPINHash string) auth.AuthService {
	return &AuthServiceImpl{
		Service:        jwtService,
		managerPINHash: []byte(managerPINHash),
	}
}

// LoginManager implements auth.AuthService.
func (a *AuthServiceImpl) LoginManager(ctx context.Context, req auth.ManagerLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if len(a.managerPINHash) == 0 {
		slog.Warn("manager login attempted but MANAGER_PIN_HASH is not configured")
		return auth.TokenResponse{}, auth.ErrInvalidPIN
	}

	if err := bcrypt.CompareHashAndPassword(a.managerPINHash, []byte(req.PIN)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return auth.TokenResponse{}, auth.ErrInvalidPIN
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to compare manager pin: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(jwt.RoleManager, jwt.RoleManager)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("manager logged in")
	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Role:        jwt.RoleManager,
	}, nil
}
