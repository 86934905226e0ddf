package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, loc *time.Location) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *EmployeeServiceImpl) mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	now := s.now().In(s.loc)

	var mcuDate *string
	if emp.MCUDate != nil {
		d := emp.MCUDate.Format(calendar.DateLayout)
		mcuDate = &d
	}

	certificates := make([]employee.CertificateResponse, 0, len(emp.SafetyCertificates))
	for _, c := range emp.SafetyCertificates {
		certificates = append(certificates, employee.CertificateResponse{
			ID:             c.ID,
			Name:           c.Name,
			ExpirationDate: c.ExpirationDate.Format(calendar.DateLayout),
			Expired:        c.IsExpired(now),
		})
	}

	return employee.EmployeeResponse{
		ID:                 emp.ID,
		Initial:            emp.Initial,
		FullName:           emp.FullName,
		Role:               string(emp.Role),
		JobTitle:           emp.JobTitle,
		EmergencyContact:   emp.EmergencyContact,
		MCUDate:            mcuDate,
		MCUExpired:         employee.IsMCUExpired(emp.MCUDate, now),
		SafetyCertificates: certificates,
		CreatedAt:          emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          emp.UpdatedAt.Format(time.RFC3339),
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	initial := strings.ToUpper(strings.TrimSpace(req.Initial))
	exists, err := s.employeeRepo.ExistsByInitial(ctx, initial, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check initial existence: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrInitialExists
	}

	newEmployee := employee.Employee{
		ID:                 uuid.NewString(),
		Initial:            initial,
		FullName:           strings.TrimSpace(req.FullName),
		Role:               employee.Role(req.Role),
		JobTitle:           req.JobTitle,
		EmergencyContact:   toEmergencyContact(req.EmergencyContact),
		MCUDate:            parseDatePtr(req.MCUDate),
		SafetyCertificates: toCertificates(req.SafetyCertificates),
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "initial", created.Initial)
	return s.mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Initial != nil {
		initial := strings.ToUpper(strings.TrimSpace(*req.Initial))
		if initial != emp.Initial {
			exists, err := s.employeeRepo.ExistsByInitial(ctx, initial, &emp.ID)
			if err != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check initial existence: %w", err)
			}
			if exists {
				return employee.EmployeeResponse{}, employee.ErrInitialExists
			}
		}
		emp.Initial = initial
	}
	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.JobTitle != nil {
		emp.JobTitle = req.JobTitle
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = toEmergencyContact(req.EmergencyContact)
	}
	if req.MCUDate != nil {
		emp.MCUDate = parseDatePtr(req.MCUDate)
	}
	if req.SafetyCertificates != nil {
		emp.SafetyCertificates = toCertificates(*req.SafetyCertificates)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.GetEmployee(ctx, emp.ID)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// ComplianceAlerts implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ComplianceAlerts(ctx context.Context, now time.Time) ([]employee.ComplianceAlert, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	now = now.In(s.loc)
	alerts := make([]employee.ComplianceAlert, 0)
	for _, emp := range employees {
		alert := employee.ComplianceAlert{
			EmployeeID:          emp.ID,
			Initial:             emp.Initial,
			FullName:            emp.FullName,
			MCUExpired:          employee.IsMCUExpired(emp.MCUDate, now),
			ExpiredCertificates: make([]string, 0),
		}
		for _, c := range emp.SafetyCertificates {
			if c.IsExpired(now) {
				alert.ExpiredCertificates = append(alert.ExpiredCertificates, c.Name)
			}
		}
		if alert.MCUExpired || len(alert.ExpiredCertificates) > 0 {
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

func toEmergencyContact(req *employee.EmergencyContactRequest) *employee.EmergencyContact {
	if req == nil {
		return nil
	}
	return &employee.EmergencyContact{
		Name:         strings.TrimSpace(req.Name),
		Relationship: strings.TrimSpace(req.Relationship),
		Phone:        strings.TrimSpace(req.Phone),
	}
}

func toCertificates(reqs []employee.CertificateRequest) []employee.SafetyCertificate {
	certificates := make([]employee.SafetyCertificate, 0, len(reqs))
	for _, c := range reqs {
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		expiration, _ := time.Parse(calendar.DateLayout, c.ExpirationDate)
		certificates = append(certificates, employee.SafetyCertificate{
			ID:             id,
			Name:           strings.TrimSpace(c.Name),
			ExpirationDate: expiration,
		})
	}
	return certificates
}

// parseDatePtr parses an already validated YYYY-MM-DD value; an empty string clears the date.
func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	parsed, err := time.Parse(calendar.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &parsed
}
