package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*60*60)

const (
	employeeAB = "5d6c1a0e-3f0b-4f37-9a51-0c8e8f0a1b01"
	employeeCD = "5d6c1a0e-3f0b-4f37-9a51-0c8e8f0a1b02"
)

func newTestService(repo *fakeAttendanceRepository, now time.Time) *AttendanceServiceImpl {
	employees := &fakeEmployeeRepository{employees: []employee.Employee{
		{ID: employeeAB, Initial: "AB", FullName: "Andi Budiman"},
		{ID: employeeCD, Initial: "CD", FullName: "Citra Dewi"},
	}}
	svc := NewAttendanceService(repo, employees, wib, nil).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func validRequest() attendance.SubmitRequest {
	return attendance.SubmitRequest{
		EmployeeID:      employeeAB,
		WorkLocation:    "Kantor Tebet",
		HealthCondition: string(attendance.HealthyNoSymptoms),
		YesterdayWork:   "Inspection report",
		TodayWork:       "Meter proving",
		TomorrowAgenda:  "Site visit",
		Suggestions:     "-",
	}
}

func TestSubmit_BlockedBeforeFive(t *testing.T) {
	created := false
	repo := &fakeAttendanceRepository{
		createFn: func(ctx context.Context, r attendance.Record) (attendance.Record, error) {
			created = true
			return r, nil
		},
	}
	svc := newTestService(repo, time.Date(2024, 3, 4, 4, 30, 0, 0, wib))

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, attendance.ErrSubmissionNotOpen)
	assert.False(t, created)
}

func TestSubmit_StoresGateStatus(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		status attendance.Status
		class  string
	}{
		{"morning", time.Date(2024, 3, 4, 7, 15, 0, 0, wib), attendance.StatusNormal, "ontime"},
		{"after ten", time.Date(2024, 3, 4, 11, 0, 0, 0, wib), attendance.StatusLate, "late"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored attendance.Record
			repo := &fakeAttendanceRepository{
				createFn: func(ctx context.Context, r attendance.Record) (attendance.Record, error) {
					stored = r
					return r, nil
				},
			}
			svc := newTestService(repo, tt.now)

			resp, err := svc.Submit(context.Background(), validRequest())
			require.NoError(t, err)

			assert.Equal(t, tt.status, stored.Status)
			assert.Equal(t, "AB", stored.EmployeeInitial)
			assert.Equal(t, "Andi Budiman", stored.EmployeeName)
			assert.Equal(t, time.UTC, stored.SubmittedAt.Location())
			assert.NotEmpty(t, stored.ID)
			assert.Nil(t, stored.CustomWorkLocation)

			assert.Equal(t, "2024-03-04", resp.Record.Date)
			assert.Equal(t, tt.class, resp.Record.Classification)
			assert.Equal(t, resp.Gate.Message, resp.Message)
		})
	}
}

func TestSubmit_RejectsSecondSubmissionSameDay(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, wib)
	repo := &fakeAttendanceRepository{
		listByEmployeeBetweenFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
			assert.True(t, from.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, wib)))
			assert.True(t, to.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, wib)))
			return []attendance.Record{{ID: "r1", EmployeeID: employeeID, SubmittedAt: now.Add(-2 * time.Hour).UTC()}}, nil
		},
	}
	svc := newTestService(repo, now)

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, attendance.ErrAlreadySubmittedToday)
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepository{}, time.Date(2024, 3, 4, 8, 0, 0, 0, wib))

	t.Run("other location needs custom text", func(t *testing.T) {
		req := validRequest()
		req.WorkLocation = attendance.OtherWorkLocation

		_, err := svc.Submit(context.Background(), req)
		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "custom_work_location")
	})

	t.Run("custom text is kept for other location", func(t *testing.T) {
		req := validRequest()
		req.WorkLocation = attendance.OtherWorkLocation
		custom := "  Pelabuhan Tanjung Priok "
		req.CustomWorkLocation = &custom

		resp, err := svc.Submit(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Record.CustomWorkLocation)
		assert.Equal(t, "Pelabuhan Tanjung Priok", *resp.Record.CustomWorkLocation)
	})

	t.Run("unknown location and health condition", func(t *testing.T) {
		req := validRequest()
		req.WorkLocation = "Kantor Surabaya"
		req.HealthCondition = "fine"
		req.TodayWork = "  "

		_, err := svc.Submit(context.Background(), req)
		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		m := errs.ToMap()
		assert.Contains(t, m, "work_location")
		assert.Contains(t, m, "health_condition")
		assert.Contains(t, m, "today_work")
	})

	t.Run("unknown employee", func(t *testing.T) {
		req := validRequest()
		req.EmployeeID = "5d6c1a0e-3f0b-4f37-9a51-0c8e8f0a1b99"

		_, err := svc.Submit(context.Background(), req)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestSubmissionStatus(t *testing.T) {
	now := time.Date(2024, 3, 4, 6, 0, 0, 0, wib)
	repo := &fakeAttendanceRepository{
		listByEmployeeBetweenFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
			if employeeID == employeeAB {
				return []attendance.Record{{ID: "r1", EmployeeID: employeeAB, SubmittedAt: now.Add(-30 * time.Minute)}}, nil
			}
			return nil, nil
		},
	}
	svc := newTestService(repo, now)

	ab, err := svc.SubmissionStatus(context.Background(), employeeAB)
	require.NoError(t, err)
	assert.True(t, ab.HasSubmitted)
	assert.False(t, ab.CanSubmit)
	require.NotNil(t, ab.TodaysRecordID)
	assert.Equal(t, "r1", *ab.TodaysRecordID)

	cd, err := svc.SubmissionStatus(context.Background(), employeeCD)
	require.NoError(t, err)
	assert.False(t, cd.HasSubmitted)
	assert.True(t, cd.CanSubmit)
	assert.Equal(t, timegate.StatusNormal, cd.Gate.Status)
}

func TestListByDate(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, wib)
	repo := &fakeAttendanceRepository{
		listBetweenFn: func(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
			assert.True(t, from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, wib)))
			return []attendance.Record{
				{ID: "r1", EmployeeID: employeeAB, SubmittedAt: time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := newTestService(repo, now)

	resp, err := svc.ListByDate(context.Background(), "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", resp.Date)
	require.Len(t, resp.Submitted, 1)
	assert.Equal(t, "2024-03-01T08:00:00+07:00", resp.Submitted[0].SubmittedAt)
	require.Len(t, resp.NotSubmitted, 1)
	assert.Equal(t, "CD", resp.NotSubmitted[0].Initial)

	_, err = svc.ListByDate(context.Background(), "01-03-2024")
	var errs validator.ValidationErrors
	assert.True(t, errors.As(err, &errs))
}

func TestList_Pagination(t *testing.T) {
	repo := &fakeAttendanceRepository{
		listFn: func(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
			assert.Equal(t, "submitted_at", filter.SortBy)
			assert.Equal(t, "desc", filter.SortOrder)
			return []attendance.Record{{ID: "r1"}, {ID: "r2"}}, 45, nil
		},
	}
	svc := newTestService(repo, time.Date(2024, 3, 4, 12, 0, 0, 0, wib))

	resp, err := svc.List(context.Background(), attendance.AttendanceFilter{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "41-45 of 45", resp.Showing)
	assert.Len(t, resp.Attendances, 2)
}

func TestGetAndDelete_NotFound(t *testing.T) {
	repo := &fakeAttendanceRepository{
		deleteFn: func(ctx context.Context, id string) error {
			return attendance.ErrAttendanceNotFound
		},
	}
	svc := newTestService(repo, time.Now())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), attendance.ErrAttendanceNotFound)
}
