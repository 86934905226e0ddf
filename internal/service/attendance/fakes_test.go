package attendance

import (
	"context"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
)

type fakeAttendanceRepository struct {
	createFn                func(ctx context.Context, record attendance.Record) (attendance.Record, error)
	getByIDFn               func(ctx context.Context, id string) (attendance.Record, error)
	deleteFn                func(ctx context.Context, id string) error
	listBetweenFn           func(ctx context.Context, from, to time.Time) ([]attendance.Record, error)
	listByEmployeeBetweenFn func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error)
	listFn                  func(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error)
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return record, nil
}

func (f *fakeAttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAttendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	if f.listBetweenFn != nil {
		return f.listBetweenFn(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	if f.listByEmployeeBetweenFn != nil {
		return f.listByEmployeeBetweenFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, 0, nil
}

type fakeEmployeeRepository struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) GetByInitial(ctx context.Context, initial string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Initial == initial {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) ExistsByInitial(ctx context.Context, initial string, excludeID *string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}
