package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/report"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/export"
)

var exportHeaders = []string{
	"Employee Code",
	"Full Name",
	"Days Present",
	"Days Absent",
	"Days Late",
	"Total Business Days",
}

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	loc            *time.Location
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	nowLocal := s.now().In(s.loc)
	month := time.Month(req.Month)
	periodStart := calendar.FirstOfMonth(req.Year, month, s.loc)
	periodEnd := calendar.LastOfMonth(req.Year, month, s.loc)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListBetween(ctx, periodStart, periodEnd.AddDate(0, 0, 1))
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	holidays, err := s.holidayRepo.ListOverlapping(ctx, periodStart, periodEnd)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	stats := Aggregate(employees, records, holiday.ToRanges(holidays), month, req.Year, nowLocal)

	slog.Debug("monthly report generated",
		"month", req.Month,
		"year", req.Year,
		"employees", len(stats),
		"records", len(records),
	)

	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: calendar.Key(periodStart),
		PeriodEnd:   calendar.Key(periodEnd),
		GeneratedAt: nowLocal.Format(time.RFC3339),
		Stats:       stats,
	}, nil
}

// CurrentMonth implements report.ReportService.
func (s *ReportServiceImpl) CurrentMonth(ctx context.Context) (report.MonthlyReport, error) {
	nowLocal := s.now().In(s.loc)
	return s.Monthly(ctx, report.MonthlyReportRequest{
		Month: int(nowLocal.Month()),
		Year:  nowLocal.Year(),
	})
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	monthly, err := s.Monthly(ctx, req.MonthlyReportRequest)
	if err != nil {
		return report.ExportFile{}, err
	}

	table := export.Table{
		Title:   fmt.Sprintf("Attendance report %s %d", time.Month(req.Month), req.Year),
		Sheet:   fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		Headers: exportHeaders,
		Rows:    make([][]any, 0, len(monthly.Stats)),
	}
	for _, st := range monthly.Stats {
		table.Rows = append(table.Rows, []any{
			st.EmployeeCode,
			st.FullName,
			st.PresentDays,
			st.AbsentDays,
			st.LateCount,
			st.TotalBusinessDays,
		})
	}

	var buf bytes.Buffer
	file := report.ExportFile{
		Filename: fmt.Sprintf("attendance-report-%04d-%02d.%s", req.Year, req.Month, req.Format),
	}

	switch req.Format {
	case report.FormatCSV:
		err = export.WriteCSV(&buf, table)
		file.ContentType = export.ContentTypeCSV
	case report.FormatXLSX:
		err = export.WriteXLSX(&buf, table)
		file.ContentType = export.ContentTypeXLSX
	default:
		return report.ExportFile{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	file.Content = buf.Bytes()
	return file, nil
}
