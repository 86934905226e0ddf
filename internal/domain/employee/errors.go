package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInitialExists    = errors.New("employee initial already exists")
	ErrInvalidRole      = errors.New("role must be manager or employee")
)
