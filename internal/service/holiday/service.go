package holiday

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/calendar"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type HolidayServiceImpl struct {
	transactor database.Transactor
	holiday.HolidayRepository
}

func NewHolidayService(transactor database.Transactor, holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		transactor:        transactor,
		HolidayRepository: holidayRepo,
	}
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	var endDate *string
	if h.EndDate != nil {
		d := h.EndDate.Format(calendar.DateLayout)
		endDate = &d
	}
	return holiday.HolidayResponse{
		ID:         h.ID,
		Date:       h.Date.Format(calendar.DateLayout),
		EndDate:    endDate,
		Name:       h.Name,
		IsCustom:   h.IsCustom,
		IsMultiDay: h.IsMultiDay,
		CreatedAt:  h.CreatedAt.Format(time.RFC3339),
	}
}

func toHoliday(req holiday.CreateHolidayRequest) holiday.Holiday {
	start, _ := time.Parse(calendar.DateLayout, req.Date)
	h := holiday.Holiday{
		ID:         uuid.NewString(),
		Date:       start,
		Name:       strings.TrimSpace(req.Name),
		IsCustom:   true,
		IsMultiDay: req.IsMultiDay,
	}
	if req.IsCustom != nil {
		h.IsCustom = *req.IsCustom
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := time.Parse(calendar.DateLayout, *req.EndDate)
		h.EndDate = &end
	}
	return h
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.HolidayRepository.Create(ctx, toHoliday(req))
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	slog.Info("holiday created", "holiday_id", created.ID, "date", req.Date, "multi_day", created.IsMultiDay)
	return mapHolidayToResponse(created), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return mapHolidays(holidays), nil
}

// ListForMonth implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListForMonth(ctx context.Context, year int, month time.Month) ([]holiday.HolidayResponse, error) {
	if month < time.January || month > time.December {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	from := calendar.FirstOfMonth(year, month, time.UTC)
	to := calendar.LastOfMonth(year, month, time.UTC)
	holidays, err := s.HolidayRepository.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return mapHolidays(holidays), nil
}

// ImportCalendar implements holiday.HolidayService. Every entry is validated before any is
// written, and all entries are created in one transaction.
func (s *HolidayServiceImpl) ImportCalendar(ctx context.Context, r io.Reader) (holiday.ImportResult, error) {
	var file holiday.CalendarFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return holiday.ImportResult{}, holiday.ErrEmptyCalendarFile
		}
		return holiday.ImportResult{}, fmt.Errorf("%w: %v", holiday.ErrInvalidCalendar, err)
	}
	if len(file.Holidays) == 0 {
		return holiday.ImportResult{}, holiday.ErrEmptyCalendarFile
	}

	var errs validator.ValidationErrors
	toCreate := make([]holiday.Holiday, 0, len(file.Holidays))
	for i, entry := range file.Holidays {
		req := entry.ToRequest()
		if err := req.Validate(); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return holiday.ImportResult{}, err
			}
			for _, fe := range fieldErrs {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("holidays[%d].%s", i, fe.Field),
					Message: fe.Message,
				})
			}
			continue
		}
		toCreate = append(toCreate, toHoliday(req))
	}
	if len(errs) > 0 {
		return holiday.ImportResult{}, errs
	}

	result := holiday.ImportResult{Holidays: make([]holiday.HolidayResponse, 0, len(toCreate))}
	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, h := range toCreate {
			created, err := s.HolidayRepository.Create(txCtx, h)
			if err != nil {
				return fmt.Errorf("failed to create holiday %q: %w", h.Name, err)
			}
			result.Holidays = append(result.Holidays, mapHolidayToResponse(created))
		}
		return nil
	})
	if err != nil {
		return holiday.ImportResult{}, err
	}

	result.Imported = len(result.Holidays)
	slog.Info("holiday calendar imported", "count", result.Imported)
	return result, nil
}

func mapHolidays(holidays []holiday.Holiday) []holiday.HolidayResponse {
	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses
}
