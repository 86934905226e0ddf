package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/report"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Monthly attendance statistics
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// Monthly attendance statistics as a CSV or XLSX download
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// parseMonthYear reads ?month=&year=; both absent means the current month.
func parseMonthYear(w http.ResponseWriter, r *http.Request) (report.MonthlyReportRequest, bool, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" && yearStr == "" {
		return report.MonthlyReportRequest{}, true, true
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return report.MonthlyReportRequest{}, false, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return report.MonthlyReportRequest{}, false, false
	}

	return report.MonthlyReportRequest{Month: month, Year: year}, false, true
}

// GetMonthlyReport handles GET /reports/monthly
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, current, ok := parseMonthYear(w, r)
	if !ok {
		return
	}

	var (
		result report.MonthlyReport
		err    error
	)
	if current {
		result, err = h.reportService.CurrentMonth(ctx)
	} else {
		result, err = h.reportService.Monthly(ctx, req)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyReport handles GET /reports/monthly/export
func (h *reportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req, current, ok := parseMonthYear(w, r)
	if !ok {
		return
	}
	if current {
		response.BadRequest(w, "month and year are required", nil)
		return
	}

	file, err := h.reportService.Export(r.Context(), report.ExportRequest{
		MonthlyReportRequest: req,
		Format:               report.ExportFormat(r.URL.Query().Get("format")),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
