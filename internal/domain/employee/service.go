package employee

import (
	"context"
	"time"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee (manager only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update (manager only)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee (manager only)
	DeleteEmployee(ctx context.Context, id string) error

	// ListEmployees returns the whole roster
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// ComplianceAlerts lists employees with an expired MCU or safety certificate
	ComplianceAlerts(ctx context.Context, now time.Time) ([]ComplianceAlert, error)
}
