package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/config"
	appHTTP "github.com/absensi-tracker/absensi-backend-go/internal/handler/http"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/cron"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/jwt"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/realtime"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/sse"
	"github.com/absensi-tracker/absensi-backend-go/internal/repository/postgresql"
	announcementService "github.com/absensi-tracker/absensi-backend-go/internal/service/announcement"
	attendanceService "github.com/absensi-tracker/absensi-backend-go/internal/service/attendance"
	serviceAuth "github.com/absensi-tracker/absensi-backend-go/internal/service/auth"
	employeeService "github.com/absensi-tracker/absensi-backend-go/internal/service/employee"
	holidayService "github.com/absensi-tracker/absensi-backend-go/internal/service/holiday"
	noteService "github.com/absensi-tracker/absensi-backend-go/internal/service/note"
	reportService "github.com/absensi-tracker/absensi-backend-go/internal/service/report"
	toolboxService "github.com/absensi-tracker/absensi-backend-go/internal/service/toolbox"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	var rdb redis.Cmdable
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err := client.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unreachable, idempotency keys will not be cached", "addr", cfg.Redis.Addr, "error", err)
		}
		rdb = client
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db, cfg.App.Timezone)
	holidayRepo := postgresql.NewHolidayRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	noteRepo := postgresql.NewNoteRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := serviceAuth.NewAuthService(JWTService, cfg.Manager.PINHash)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, loc, cfg.Attendance.WorkLocations)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, loc)
	holidaySvc := holidayService.NewHolidayService(postgresql.NewTransactor(db), holidayRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, employeeRepo)
	noteSvc := noteService.NewNoteService(noteRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, holidayRepo, loc)
	toolboxSvc := toolboxService.NewToolboxService()

	hub := sse.NewHub()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Recompute the live dashboards whenever the underlying tables change
	publishMonthlyStats := func(ctx context.Context, n realtime.Notification) {
		stats, err := reportSvc.CurrentMonth(ctx)
		if err != nil {
			slog.Error("Failed to refresh monthly stats", "channel", n.Channel, "error", err)
			return
		}
		hub.Publish(sse.Event{Event: sse.TopicMonthlyStats, Data: stats})
	}
	session := realtime.NewSession(ctx, db, map[string]realtime.Handler{
		realtime.ChannelAttendance: publishMonthlyStats,
		realtime.ChannelEmployees:  publishMonthlyStats,
		realtime.ChannelHolidays:   publishMonthlyStats,
		realtime.ChannelAnnouncements: func(ctx context.Context, n realtime.Notification) {
			list, err := announcementSvc.List(ctx)
			if err != nil {
				slog.Error("Failed to refresh announcements", "error", err)
				return
			}
			hub.Publish(sse.Event{Event: sse.TopicAnnouncements, Data: list})
		},
	})
	defer session.Close()

	scheduler := cron.NewScheduler()
	cron.NewComplianceJobs(employeeSvc, hub).RegisterJobs(scheduler)
	cron.NewAttendanceJobs(attendanceSvc, holidayRepo, hub, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, appHTTP.RouterOptions{
		AllowedOrigins: []string{cfg.App.FrontendURL},
		Env:            cfg.App.Env,
		LogLevel:       level,
		Redis:          rdb,
		SubmitRate:     cfg.RateLimit.SubmitPerSecond,
		SubmitBurst:    cfg.RateLimit.SubmitBurst,
	}, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Note:         appHTTP.NewNoteHandler(noteSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Toolbox:      appHTTP.NewToolboxHandler(toolboxSvc),
		Stream:       appHTTP.NewStreamHandler(hub),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// streams end when the process context is cancelled
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
