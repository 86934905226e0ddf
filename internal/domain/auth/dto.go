package auth

import "github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"

type ManagerLoginRequest struct {
	PIN string `json:"pin"`
}

func (r *ManagerLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}
	if len(r.PIN) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	Role        string `json:"role"`
}
