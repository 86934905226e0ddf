package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/middleware"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const idempotencyTTL = 24 * time.Hour

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level

	// Redis backs idempotent submissions; nil disables it
	Redis       redis.Cmdable
	SubmitRate  rate.Limit
	SubmitBurst int
}

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Employee     EmployeeHandler
	Holiday      HolidayHandler
	Announcement AnnouncementHandler
	Note         NoteHandler
	Report       ReportHandler
	Toolbox      ToolboxHandler
	Stream       StreamHandler
}

func NewRouter(JWTService jwt.Service, opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	manager := chi.Chain(
		jwtauth.Verifier(JWTService.JWTAuth()),
		middleware.AuthRequired(JWTService.JWTAuth()),
		middleware.RequireManager,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/manager", h.Auth.LoginManager)

		r.Get("/stream", h.Stream.Stream)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/gate", h.Attendance.Gate)
			r.Get("/status/{employeeID}", h.Attendance.Status)
			r.Get("/daily", h.Attendance.Daily)
			r.With(
				middleware.RateLimitByIP(opts.SubmitRate, opts.SubmitBurst),
				middleware.Idempotency(opts.Redis, idempotencyTTL),
			).Post("/", h.Attendance.Submit)

			r.With(manager...).Get("/", h.Attendance.List)
			r.With(manager...).Get("/{id}", h.Attendance.Get)
			r.With(manager...).Delete("/{id}", h.Attendance.Delete)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)

			r.Group(func(r chi.Router) {
				r.Use(manager...)
				r.Get("/compliance", h.Employee.Compliance)
				r.Post("/", h.Employee.Create)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)

			r.Group(func(r chi.Router) {
				r.Use(manager...)
				r.Post("/", h.Holiday.Create)
				r.Post("/import", h.Holiday.Import)
				r.Delete("/{id}", h.Holiday.Delete)
			})
		})

		r.Route("/announcements", func(r chi.Router) {
			r.Get("/", h.Announcement.List)
			r.Post("/{id}/acknowledge", h.Announcement.Acknowledge)

			r.Group(func(r chi.Router) {
				r.Use(manager...)
				r.Post("/", h.Announcement.Create)
				r.Delete("/{id}", h.Announcement.Delete)
				r.Get("/{id}/read-status", h.Announcement.ReadStatus)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.Note.List)
			r.Post("/", h.Note.Create)
			r.Get("/{id}", h.Note.Get)
			r.Put("/{id}", h.Note.Update)
			r.Delete("/{id}", h.Note.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(manager...)
			r.Get("/monthly", h.Report.GetMonthlyReport)
			r.Get("/monthly/export", h.Report.ExportMonthlyReport)
		})

		r.Route("/toolbox", func(r chi.Router) {
			r.Get("/units", h.Toolbox.Units)
			r.Post("/convert", h.Toolbox.Convert)
			r.Post("/interpolate", h.Toolbox.Interpolate)
			r.Post("/displacer", h.Toolbox.Displacer)
			r.Post("/ctl", h.Toolbox.CTL)
			r.Post("/vcf", h.Toolbox.VCF)
			r.Post("/calibration", h.Toolbox.Calibration)
		})
	})
	return r
}
