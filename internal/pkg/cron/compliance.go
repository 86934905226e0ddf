package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/sse"
)

// Publisher pushes an event to connected clients
type Publisher interface {
	Publish(event sse.Event)
}

// ComplianceJobs reports expired medical checkups and safety certificates
type ComplianceJobs struct {
	employeeService employee.EmployeeService
	publisher       Publisher
	now             func() time.Time
}

func NewComplianceJobs(employeeService employee.EmployeeService, publisher Publisher) *ComplianceJobs {
	return &ComplianceJobs{
		employeeService: employeeService,
		publisher:       publisher,
		now:             time.Now,
	}
}

func (j *ComplianceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("compliance_alerts", 24*time.Hour, j.ComplianceAlerts)
}

func (j *ComplianceJobs) ComplianceAlerts(ctx context.Context) error {
	alerts, err := j.employeeService.ComplianceAlerts(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to compute compliance alerts: %w", err)
	}

	if len(alerts) == 0 {
		slog.Info("Cron: No compliance alerts")
		return nil
	}

	for _, a := range alerts {
		slog.Warn("Cron: Compliance alert",
			"employee_id", a.EmployeeID,
			"initial", a.Initial,
			"mcu_expired", a.MCUExpired,
			"expired_certificates", len(a.ExpiredCertificates))
	}

	j.publisher.Publish(sse.Event{Event: sse.TopicCompliance, Data: alerts})
	return nil
}
