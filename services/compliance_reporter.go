package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/haccp-app/config"
)

// ComplianceReporter logs the day's compliance summary on a cron schedule so
// the kitchen manager sees open deviations before closing.
type ComplianceReporter struct {
	cron     *cron.Cron
	stats    *StatsService
	schedule string
	logger   *logrus.Logger
}

func NewComplianceReporter(stats *StatsService, schedule string, loc *time.Location, logger *logrus.Logger) *ComplianceReporter {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ComplianceReporter{
		cron:     cron.New(cron.WithLocation(loc)),
		stats:    stats,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the job and starts the scheduler. An empty schedule is a
// no-op.
func (r *ComplianceReporter) Start() error {
	if r.schedule == "" {
		r.logger.Info("compliance reporter disabled")
		return nil
	}
	if _, err := r.cron.AddFunc(r.schedule, r.run); err != nil {
		return fmt.Errorf("invalid REPORT_CRON %q: %w", r.schedule, err)
	}
	r.cron.Start()
	r.logger.WithField("schedule", r.schedule).Info("compliance reporter started")
	return nil
}

// Stop waits for a running job to finish.
func (r *ComplianceReporter) Stop() {
	<-r.cron.Stop().Done()
}

func (r *ComplianceReporter) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := r.RunOnce(ctx); err != nil {
		r.logger.WithError(err).Error("compliance report failed")
	}
}

// RunOnce computes today's stats and logs them.
func (r *ComplianceReporter) RunOnce(ctx context.Context) (Stats, error) {
	stats, err := r.stats.Compute(ctx, config.ScopeToday)
	if err != nil {
		return Stats{}, err
	}

	entry := r.logger.WithFields(logrus.Fields{
		"total_logs":       stats.TotalLogs,
		"deviations":       stats.Deviations,
		"compliance_score": stats.ComplianceScore,
	})
	if stats.Deviations > 0 {
		entry.Warn("daily compliance summary: deviations recorded today")
	} else {
		entry.Info("daily compliance summary")
	}
	return stats, nil
}
