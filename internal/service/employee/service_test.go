package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*60*60)

type fakeEmployeeRepository struct {
	getByIDFn         func(ctx context.Context, id string) (employee.Employee, error)
	existsByInitialFn func(ctx context.Context, initial string, excludeID *string) (bool, error)
	createFn          func(ctx context.Context, e employee.Employee) (employee.Employee, error)
	updateFn          func(ctx context.Context, e employee.Employee) error
	deleteFn          func(ctx context.Context, id string) error
	listFn            func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) GetByInitial(ctx context.Context, initial string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) ExistsByInitial(ctx context.Context, initial string, excludeID *string) (bool, error) {
	if f.existsByInitialFn != nil {
		return f.existsByInitialFn(ctx, initial, excludeID)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return e, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func newTestService(repo *fakeEmployeeRepository, now time.Time) *EmployeeServiceImpl {
	svc := NewEmployeeService(repo, wib).(*EmployeeServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsMCUExpired(t *testing.T) {
	mcu := date(2024, 1, 1)

	assert.False(t, employee.IsMCUExpired(nil, date(2030, 1, 1)))
	assert.False(t, employee.IsMCUExpired(&mcu, mcu.AddDate(0, 0, 329)))
	assert.True(t, employee.IsMCUExpired(&mcu, mcu.AddDate(0, 0, 330)))
	assert.True(t, employee.IsMCUExpired(&mcu, date(2025, 1, 1)))
}

func TestCreateEmployee(t *testing.T) {
	var stored employee.Employee
	repo := &fakeEmployeeRepository{
		createFn: func(ctx context.Context, e employee.Employee) (employee.Employee, error) {
			stored = e
			return e, nil
		},
	}
	svc := newTestService(repo, time.Date(2024, 6, 1, 9, 0, 0, 0, wib))

	mcu := "2023-06-01"
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Initial:  " ab ",
		FullName: "Andi Budiman",
		MCUDate:  &mcu,
		SafetyCertificates: []employee.CertificateRequest{
			{Name: "H2S Awareness", ExpirationDate: "2024-05-31"},
			{Name: "First Aid", ExpirationDate: "2024-06-01"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "AB", stored.Initial)
	assert.Equal(t, employee.RoleEmployee, stored.Role)
	assert.NotEmpty(t, stored.ID)
	require.Len(t, stored.SafetyCertificates, 2)
	assert.NotEmpty(t, stored.SafetyCertificates[0].ID)

	assert.True(t, resp.MCUExpired)
	assert.True(t, resp.SafetyCertificates[0].Expired)
	assert.False(t, resp.SafetyCertificates[1].Expired, "a certificate expiring today is still valid")
}

func TestCreateEmployee_DuplicateInitial(t *testing.T) {
	repo := &fakeEmployeeRepository{
		existsByInitialFn: func(ctx context.Context, initial string, excludeID *string) (bool, error) {
			assert.Equal(t, "AB", initial)
			assert.Nil(t, excludeID)
			return true, nil
		},
	}
	svc := newTestService(repo, time.Now())

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Initial: "AB", FullName: "Andi"})
	assert.ErrorIs(t, err, employee.ErrInitialExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepository{}, time.Now())

	bad := "01/06/2023"
	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Initial: "",
		Role:    "owner",
		MCUDate: &bad,
	})

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	assert.Contains(t, m, "initial")
	assert.Contains(t, m, "full_name")
	assert.Contains(t, m, "role")
	assert.Contains(t, m, "mcu_date")
}

func TestUpdateEmployee_Partial(t *testing.T) {
	current := employee.Employee{ID: "e1", Initial: "AB", FullName: "Andi Budiman", Role: employee.RoleEmployee}
	var updated employee.Employee
	repo := &fakeEmployeeRepository{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			if updated.ID != "" {
				return updated, nil
			}
			return current, nil
		},
		updateFn: func(ctx context.Context, e employee.Employee) error {
			updated = e
			return nil
		},
	}
	svc := newTestService(repo, time.Now())

	title := "Metrology Engineer"
	resp, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: "e1", JobTitle: &title})
	require.NoError(t, err)

	assert.Equal(t, "AB", updated.Initial)
	assert.Equal(t, "Andi Budiman", updated.FullName)
	require.NotNil(t, resp.JobTitle)
	assert.Equal(t, title, *resp.JobTitle)
}

func TestUpdateEmployee_InitialTakenByAnother(t *testing.T) {
	repo := &fakeEmployeeRepository{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: "e1", Initial: "AB"}, nil
		},
		existsByInitialFn: func(ctx context.Context, initial string, excludeID *string) (bool, error) {
			require.NotNil(t, excludeID)
			assert.Equal(t, "e1", *excludeID)
			return initial == "CD", nil
		},
	}
	svc := newTestService(repo, time.Now())

	cd := "cd"
	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: "e1", Initial: &cd})
	assert.ErrorIs(t, err, employee.ErrInitialExists)
}

func TestComplianceAlerts(t *testing.T) {
	oldMCU := date(2023, 1, 10)
	freshMCU := date(2024, 5, 1)
	repo := &fakeEmployeeRepository{
		listFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: "e1", Initial: "AB", MCUDate: &oldMCU},
				{ID: "e2", Initial: "CD", MCUDate: &freshMCU, SafetyCertificates: []employee.SafetyCertificate{
					{Name: "BOSIET", ExpirationDate: date(2024, 5, 1)},
					{Name: "Rigging", ExpirationDate: date(2026, 1, 1)},
				}},
				{ID: "e3", Initial: "EF", MCUDate: &freshMCU},
			}, nil
		},
	}
	svc := newTestService(repo, time.Now())

	alerts, err := svc.ComplianceAlerts(context.Background(), time.Date(2024, 6, 1, 8, 0, 0, 0, wib))
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	assert.Equal(t, "AB", alerts[0].Initial)
	assert.True(t, alerts[0].MCUExpired)
	assert.Empty(t, alerts[0].ExpiredCertificates)
	assert.Equal(t, "CD", alerts[1].Initial)
	assert.False(t, alerts[1].MCUExpired)
	assert.Equal(t, []string{"BOSIET"}, alerts[1].ExpiredCertificates)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	repo := &fakeEmployeeRepository{
		deleteFn: func(ctx context.Context, id string) error {
			return employee.ErrEmployeeNotFound
		},
	}
	svc := newTestService(repo, time.Now())

	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), "missing"), employee.ErrEmployeeNotFound)
}
