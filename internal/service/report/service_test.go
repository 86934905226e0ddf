package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/report"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeEmployeeRepository struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeAttendanceRepository struct {
	attendance.AttendanceRepository
	listBetweenFn func(ctx context.Context, from, to time.Time) ([]attendance.Record, error)
}

func (f *fakeAttendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	return f.listBetweenFn(ctx, from, to)
}

type fakeHolidayRepository struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func newTestService(records []attendance.Record, holidays []holiday.Holiday, now time.Time) *ReportServiceImpl {
	attendanceRepo := &fakeAttendanceRepository{
		listBetweenFn: func(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
			return records, nil
		},
	}
	svc := NewReportService(
		&fakeEmployeeRepository{employees: roster},
		attendanceRepo,
		&fakeHolidayRepository{holidays: holidays},
		wib,
	).(*ReportServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestMonthly(t *testing.T) {
	var gotFrom, gotTo time.Time
	svc := newTestService(nil, nil, time.Date(2024, 4, 2, 9, 0, 0, 0, wib))
	svc.attendanceRepo = &fakeAttendanceRepository{
		listBetweenFn: func(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
			gotFrom, gotTo = from, to
			return []attendance.Record{rec("e-ab", 2024, time.March, 4, 8, 0)}, nil
		},
	}

	rep, err := svc.Monthly(context.Background(), report.MonthlyReportRequest{Month: 3, Year: 2024})
	require.NoError(t, err)

	assert.True(t, gotFrom.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, wib)))
	assert.True(t, gotTo.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, wib)))
	assert.Equal(t, "2024-03-01", rep.PeriodStart)
	assert.Equal(t, "2024-03-31", rep.PeriodEnd)
	require.Len(t, rep.Stats, 2)
	assert.Equal(t, 1, rep.Stats[0].PresentDays)
}

func TestMonthly_UsesStoredHolidays(t *testing.T) {
	end := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	holidays := []holiday.Holiday{
		{Date: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), EndDate: &end, IsMultiDay: true},
	}
	svc := newTestService(nil, holidays, time.Date(2024, 5, 2, 9, 0, 0, 0, wib))

	rep, err := svc.Monthly(context.Background(), report.MonthlyReportRequest{Month: 4, Year: 2024})
	require.NoError(t, err)

	// April 2024 has 22 weekdays; the 8th to the 15th removes six of them
	assert.Equal(t, 16, rep.Stats[0].TotalBusinessDays)
}

func TestMonthly_InvalidRequest(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())

	_, err := svc.Monthly(context.Background(), report.MonthlyReportRequest{Month: 13, Year: 1999})
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 2)
}

func TestExport_CSV(t *testing.T) {
	records := []attendance.Record{
		rec("e-ab", 2024, time.March, 4, 8, 0),
		rec("e-ab", 2024, time.March, 4, 11, 0),
	}
	svc := newTestService(records, nil, time.Date(2024, 4, 2, 9, 0, 0, 0, wib))

	file, err := svc.Export(context.Background(), report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{Month: 3, Year: 2024},
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance-report-2024-03.csv", file.Filename)
	want := "Employee Code,Full Name,Days Present,Days Absent,Days Late,Total Business Days\n" +
		"AB,Andi Budiman,1,20,1,21\n" +
		"CD,Citra Dewi,0,21,0,21\n"
	assert.Equal(t, want, string(file.Content))
}

func TestExport_XLSX(t *testing.T) {
	svc := newTestService(nil, nil, time.Date(2024, 4, 2, 9, 0, 0, 0, wib))

	file, err := svc.Export(context.Background(), report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{Month: 3, Year: 2024},
		Format:               report.FormatXLSX,
	})
	require.NoError(t, err)
	assert.Equal(t, "attendance-report-2024-03.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	code, err := f.GetCellValue("2024-03", "A5")
	require.NoError(t, err)
	assert.Equal(t, "CD", code)
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())

	_, err := svc.Export(context.Background(), report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{Month: 3, Year: 2024},
		Format:               "pdf",
	})
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "format")
}
