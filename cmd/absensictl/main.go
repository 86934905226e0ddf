package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/config"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/report"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-tracker/absensi-backend-go/internal/repository/postgresql"
	holidayService "github.com/absensi-tracker/absensi-backend-go/internal/service/holiday"
	reportService "github.com/absensi-tracker/absensi-backend-go/internal/service/report"
	"github.com/spf13/pflag"
)

const usage = `absensictl: maintenance commands for the attendance backend.

Usage:
  absensictl report [--month N] [--year N] [--format csv|xlsx] [--out PATH]
  absensictl import-holidays --file PATH

Configuration is read from the environment (and .env) like the API server.
`

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(os.Stderr, usage)
		return nil
	}

	switch args[0] {
	case "report":
		return runReport(args[1:])
	case "import-holidays":
		return runImportHolidays(args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// connect loads the configuration and opens the database pool.
func connect() (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, db, nil
}

func runReport(args []string) error {
	var (
		month  int
		year   int
		format string
		out    string
	)

	flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flagSet.IntVar(&month, "month", 0, "report month 1-12 (default: current month)")
	flagSet.IntVar(&year, "year", 0, "report year (default: current year)")
	flagSet.StringVarP(&format, "format", "f", string(report.FormatCSV), "export format: csv or xlsx")
	flagSet.StringVarP(&out, "out", "o", "", "output file (default: generated file name in the working directory)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	svc := reportService.NewReportService(
		postgresql.NewEmployeeRepository(db),
		postgresql.NewAttendanceRepository(db, cfg.App.Timezone),
		postgresql.NewHolidayRepository(db),
		loc,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	file, err := svc.Export(ctx, report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{Month: month, Year: year},
		Format:               report.ExportFormat(format),
	})
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	if out == "" {
		out = file.Filename
	}
	if err := os.WriteFile(out, file.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(file.Content))
	return nil
}

func runImportHolidays(args []string) error {
	var path string

	flagSet := pflag.NewFlagSet("import-holidays", pflag.ContinueOnError)
	flagSet.StringVar(&path, "file", "", "YAML holiday calendar to import")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if path == "" {
		return errors.New("--file is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open calendar: %w", err)
	}
	defer f.Close()

	_, db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	svc := holidayService.NewHolidayService(postgresql.NewTransactor(db), postgresql.NewHolidayRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := svc.ImportCalendar(ctx, f)
	if err != nil {
		return fmt.Errorf("failed to import holidays: %w", err)
	}

	for _, h := range result.Holidays {
		fmt.Printf("  %s  %s\n", h.Date, h.Name)
	}
	fmt.Printf("Imported %d holidays\n", result.Imported)
	return nil
}
