package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByInitial(ctx context.Context, initial string) (Employee, error)
	ExistsByInitial(ctx context.Context, initial string, excludeID *string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
	// List returns the roster ordered by initial
	List(ctx context.Context) ([]Employee, error)
}
