package auth

import "errors"

var (
	ErrInvalidPIN      = errors.New("invalid manager PIN")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrManagerRequired = errors.New("manager access required")
)
