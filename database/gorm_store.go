package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/haccp-app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const newestFirst = "created_at DESC, id DESC"

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) conn(ctx context.Context) (*gorm.DB, error) {
	if s == nil || s.DB == nil {
		return nil, ErrNotInitialized
	}
	return s.DB.WithContext(ctx), nil
}

func (s *GormStore) ListCCPs(ctx context.Context) ([]models.CCP, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	ccps := make([]models.CCP, 0)
	if err := db.Order("id ASC").Find(&ccps).Error; err != nil {
		return nil, fmt.Errorf("list ccps: %w", err)
	}
	return ccps, nil
}

func (s *GormStore) ListTemperatureLogs(ctx context.Context) ([]models.TemperatureLog, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	logs := make([]models.TemperatureLog, 0)
	if err := db.Order(newestFirst).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list temperature logs: %w", err)
	}
	return logs, nil
}

func (s *GormStore) CreateTemperatureLog(ctx context.Context, log *models.TemperatureLog) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(log).Error; err != nil {
		return fmt.Errorf("create temperature log: %w", err)
	}
	return nil
}

// countLogsSelect reads both counters from one snapshot so deviations can
// never exceed the total.
const countLogsSelect = "COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_deviation THEN 1 ELSE 0 END), 0) AS deviations"

func (s *GormStore) CountTemperatureLogs(ctx context.Context, since time.Time) (LogCounts, error) {
	var counts LogCounts
	db, err := s.conn(ctx)
	if err != nil {
		return counts, err
	}

	q := db.Model(&models.TemperatureLog{}).Select(countLogsSelect)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since.UTC())
	}
	if err := q.Scan(&counts).Error; err != nil {
		return counts, fmt.Errorf("count temperature logs: %w", err)
	}
	return counts, nil
}

func (s *GormStore) ListGoodsReceipts(ctx context.Context) ([]models.GoodsReceipt, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	receipts := make([]models.GoodsReceipt, 0)
	if err := db.Order(newestFirst).Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("list goods receipts: %w", err)
	}
	return receipts, nil
}

func (s *GormStore) CreateGoodsReceipt(ctx context.Context, receipt *models.GoodsReceipt) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(receipt).Error; err != nil {
		return fmt.Errorf("create goods receipt: %w", err)
	}
	return nil
}

func (s *GormStore) ListCleaningTasks(ctx context.Context) ([]models.CleaningTask, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]models.CleaningTask, 0)
	if err := db.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list cleaning tasks: %w", err)
	}
	return tasks, nil
}

func (s *GormStore) ListCleaningLogs(ctx context.Context) ([]models.CleaningLog, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	logs := make([]models.CleaningLog, 0)
	if err := db.Preload("Task").Order(newestFirst).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list cleaning logs: %w", err)
	}
	return logs, nil
}

func (s *GormStore) CreateCleaningLog(ctx context.Context, log *models.CleaningLog) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var task models.CleaningTask
		if err := tx.First(&task, log.TaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrCleaningTaskNotFound, log.TaskID)
			}
			return fmt.Errorf("lookup cleaning task: %w", err)
		}

		if err := tx.Omit(clause.Associations).Create(log).Error; err != nil {
			return fmt.Errorf("create cleaning log: %w", err)
		}
		log.Task = task
		return nil
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return ErrNotInitialized
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
