package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxCalendarBytes = 1 << 20

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

// List handles GET /holidays, optionally narrowed with ?year=&month=
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	yearStr, monthStr := r.URL.Query().Get("year"), r.URL.Query().Get("month")
	if yearStr == "" && monthStr == "" {
		result, err := h.holidayService.ListHolidays(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	details := map[string]string{}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		details["year"] = "year must be a number"
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		details["month"] = "month must be between 1 and 12"
	}
	if len(details) > 0 {
		response.BadRequest(w, "Invalid query parameters", details)
		return
	}

	result, err := h.holidayService.ListForMonth(r.Context(), year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /holidays
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

// Delete handles DELETE /holidays/{id}
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// Import handles POST /holidays/import with a YAML calendar as the body
func (h *holidayHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxCalendarBytes)

	result, err := h.holidayService.ImportCalendar(r.Context(), body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday calendar imported", result)
}
