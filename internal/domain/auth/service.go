package auth

import "context"

type AuthService interface {
	// LoginManager checks the manager PIN and issues a manager access token
	LoginManager(ctx context.Context, req ManagerLoginRequest) (TokenResponse, error)
}
