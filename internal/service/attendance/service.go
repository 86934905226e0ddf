package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc           *time.Location
	workLocations []string
	now           func() time.Time
}

// Submit implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	nowLocal := a.now().In(a.loc)

	gate := timegate.CheckGate(nowLocal)
	if !gate.Allowed {
		return attendance.SubmitResponse{}, attendance.ErrSubmissionNotOpen
	}

	if err := req.Validate(a.workLocations); err != nil {
		return attendance.SubmitResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.SubmitResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.SubmitResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	dayStart := calendar.DateOf(nowLocal)
	todays, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, emp.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("failed to check today's submissions: %w", err)
	}
	if HasSubmittedToday(emp.ID, todays, nowLocal) {
		return attendance.SubmitResponse{}, attendance.ErrAlreadySubmittedToday
	}

	status := attendance.StatusNormal
	if gate.Status == timegate.StatusLate {
		status = attendance.StatusLate
	}

	var customLocation *string
	if req.WorkLocation == attendance.OtherWorkLocation && req.CustomWorkLocation != nil {
		trimmed := strings.TrimSpace(*req.CustomWorkLocation)
		customLocation = &trimmed
	}

	record := attendance.Record{
		ID:                 uuid.NewString(),
		EmployeeID:         emp.ID,
		EmployeeInitial:    emp.Initial,
		EmployeeName:       emp.FullName,
		WorkLocation:       req.WorkLocation,
		CustomWorkLocation: customLocation,
		HealthCondition:    attendance.HealthCondition(req.HealthCondition),
		YesterdayWork:      strings.TrimSpace(req.YesterdayWork),
		TodayWork:          strings.TrimSpace(req.TodayWork),
		TomorrowAgenda:     strings.TrimSpace(req.TomorrowAgenda),
		Suggestions:        strings.TrimSpace(req.Suggestions),
		SubmittedAt:        nowLocal.UTC(),
		Status:             status,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("attendance submitted",
		"record_id", created.ID,
		"employee_id", created.EmployeeID,
		"status", created.Status,
	)

	return attendance.SubmitResponse{
		Record:  a.mapRecordToResponse(created),
		Gate:    gate,
		Message: gate.Message,
	}, nil
}

// GateStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GateStatus(ctx context.Context) timegate.Result {
	return timegate.CheckGate(a.now().In(a.loc))
}

// SubmissionStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SubmissionStatus(ctx context.Context, employeeID string) (attendance.SubmissionStatusResponse, error) {
	nowLocal := a.now().In(a.loc)

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.SubmissionStatusResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.SubmissionStatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	dayStart := calendar.DateOf(nowLocal)
	todays, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, emp.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return attendance.SubmissionStatusResponse{}, fmt.Errorf("failed to check today's submissions: %w", err)
	}

	gate := timegate.CheckGate(nowLocal)
	resp := attendance.SubmissionStatusResponse{
		EmployeeID:   emp.ID,
		Date:         calendar.Key(nowLocal),
		HasSubmitted: HasSubmittedToday(emp.ID, todays, nowLocal),
		Gate:         gate,
	}
	resp.CanSubmit = gate.Allowed && !resp.HasSubmitted
	for _, r := range todays {
		if r.EmployeeID == emp.ID && calendar.SameDate(r.SubmittedAt, nowLocal) {
			id := r.ID
			resp.TodaysRecordID = &id
			break
		}
	}

	return resp, nil
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) (attendance.DailyResponse, error) {
	day := calendar.DateOf(a.now().In(a.loc))
	if date != "" {
		parsed, err := time.ParseInLocation(calendar.DateLayout, date, a.loc)
		if err != nil {
			return attendance.DailyResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		day = parsed
	}

	roster, err := a.EmployeeRepository.List(ctx)
	if err != nil {
		return attendance.DailyResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := a.AttendanceRepository.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return attendance.DailyResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	submitted := make(map[string]struct{}, len(records))
	resp := attendance.DailyResponse{
		Date:         calendar.Key(day),
		Submitted:    make([]attendance.RecordResponse, 0, len(records)),
		NotSubmitted: make([]attendance.EmployeeRef, 0),
	}
	for _, r := range records {
		submitted[r.EmployeeID] = struct{}{}
		resp.Submitted = append(resp.Submitted, a.mapRecordToResponse(r))
	}
	for _, emp := range roster {
		if _, ok := submitted[emp.ID]; ok {
			continue
		}
		resp.NotSubmitted = append(resp.NotSubmitted, attendance.EmployeeRef{
			ID:       emp.ID,
			Initial:  emp.Initial,
			FullName: emp.FullName,
		})
	}

	return resp, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, a.mapRecordToResponse(r))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.RecordResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a.mapRecordToResponse(record), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	slog.Info("attendance deleted", "record_id", id)
	return nil
}

// mapRecordToResponse renders a record in the service's reporting location
func (a *AttendanceServiceImpl) mapRecordToResponse(r attendance.Record) attendance.RecordResponse {
	local := r.SubmittedAt.In(a.loc)
	return attendance.RecordResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		EmployeeInitial:    r.EmployeeInitial,
		EmployeeName:       r.EmployeeName,
		WorkLocation:       r.WorkLocation,
		CustomWorkLocation: r.CustomWorkLocation,
		HealthCondition:    string(r.HealthCondition),
		YesterdayWork:      r.YesterdayWork,
		TodayWork:          r.TodayWork,
		TomorrowAgenda:     r.TomorrowAgenda,
		Suggestions:        r.Suggestions,
		Date:               calendar.Key(local),
		SubmittedAt:        local.Format(time.RFC3339),
		Status:             string(r.Status),
		Classification:     string(Classify(local)),
	}
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	workLocations []string,
) attendance.AttendanceService {
	if len(workLocations) == 0 {
		workLocations = attendance.DefaultWorkLocations
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
		workLocations:        workLocations,
		now:                  time.Now,
	}
}
