package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Monthly computes the per-employee statistics for a month
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// Export renders the monthly report as CSV or XLSX
	Export(ctx context.Context, req ExportRequest) (ExportFile, error)

	// CurrentMonth computes the report for the month containing now
	CurrentMonth(ctx context.Context) (MonthlyReport, error)
}
