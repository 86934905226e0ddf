package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
	id, initial, full_name, role, job_title, emergency_contact, mcu_date, safety_certificates,
	created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Initial, &emp.FullName, &emp.Role, &emp.JobTitle, &emp.EmergencyContact,
		&emp.MCUDate, &emp.SafetyCertificates, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if emp.SafetyCertificates == nil {
		emp.SafetyCertificates = []employee.SafetyCertificate{}
	}
	return emp, err
}

func certificatesOrEmpty(certs []employee.SafetyCertificate) []employee.SafetyCertificate {
	if certs == nil {
		return []employee.SafetyCertificate{}
	}
	return certs
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %s: %w", id, err)
	}
	return emp, nil
}

// GetByInitial implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByInitial(ctx context.Context, initial string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE initial = $1`, initial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by initial %s: %w", initial, err)
	}
	return emp, nil
}

// ExistsByInitial implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByInitial(ctx context.Context, initial string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE initial = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exists bool
	if err := q.QueryRow(ctx, query, initial, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee initial: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, initial, full_name, role, job_title, emergency_contact, mcu_date, safety_certificates
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Initial, newEmployee.FullName, newEmployee.Role, newEmployee.JobTitle,
		newEmployee.EmergencyContact, newEmployee.MCUDate, certificatesOrEmpty(newEmployee.SafetyCertificates),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrInitialExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET initial = $2, full_name = $3, role = $4, job_title = $5, emergency_contact = $6,
			mcu_date = $7, safety_certificates = $8, updated_at = NOW()
		WHERE id = $1`

	commandTag, err := q.Exec(ctx, query,
		emp.ID, emp.Initial, emp.FullName, emp.Role, emp.JobTitle, emp.EmergencyContact,
		emp.MCUDate, certificatesOrEmpty(emp.SafetyCertificates),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrInitialExists
		}
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY initial ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
