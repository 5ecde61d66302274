package database

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/haccp-app/models"
)

var (
	ErrCleaningTaskNotFound = errors.New("cleaning task not found")
	ErrNotInitialized       = errors.New("database connection is not initialized")
)

// LogCounts is the raw material for the dashboard statistics.
type LogCounts struct {
	Total      int64
	Deviations int64
}

// Store is the data-access surface used by services and controllers.
// List methods for log-like records return newest first.
type Store interface {
	ListCCPs(ctx context.Context) ([]models.CCP, error)

	ListTemperatureLogs(ctx context.Context) ([]models.TemperatureLog, error)
	CreateTemperatureLog(ctx context.Context, log *models.TemperatureLog) error
	// CountTemperatureLogs counts logs created at or after since; a zero
	// since counts everything.
	CountTemperatureLogs(ctx context.Context, since time.Time) (LogCounts, error)

	ListGoodsReceipts(ctx context.Context) ([]models.GoodsReceipt, error)
	CreateGoodsReceipt(ctx context.Context, receipt *models.GoodsReceipt) error

	ListCleaningTasks(ctx context.Context) ([]models.CleaningTask, error)
	ListCleaningLogs(ctx context.Context) ([]models.CleaningLog, error)
	// CreateCleaningLog fails with ErrCleaningTaskNotFound when log.TaskID
	// does not reference an existing task. On success log.Task is populated.
	CreateCleaningLog(ctx context.Context, log *models.CleaningLog) error

	Ping(ctx context.Context) error
}
