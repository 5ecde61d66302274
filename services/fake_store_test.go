package services

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
)

// fakeStore is an in-memory database.Store for exercising services without
// a live database.
type fakeStore struct {
	mu      sync.Mutex
	ccps    []models.CCP
	logs    []models.TemperatureLog
	nextID  uint
	now     func() time.Time
	listErr error
	saveErr error
}

var _ database.Store = (*fakeStore)(nil)

func newFakeStore(ccps ...models.CCP) *fakeStore {
	return &fakeStore{ccps: ccps, now: time.Now}
}

func (f *fakeStore) ListCCPs(ctx context.Context) ([]models.CCP, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.CCP(nil), f.ccps...), nil
}

func (f *fakeStore) ListTemperatureLogs(ctx context.Context) ([]models.TemperatureLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.TemperatureLog, 0, len(f.logs))
	for i := len(f.logs) - 1; i >= 0; i-- {
		out = append(out, f.logs[i])
	}
	return out, nil
}

func (f *fakeStore) CreateTemperatureLog(ctx context.Context, log *models.TemperatureLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.nextID++
	log.ID = f.nextID
	if log.CreatedAt.IsZero() {
		log.CreatedAt = f.now()
	}
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeStore) CountTemperatureLogs(ctx context.Context, since time.Time) (database.LogCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var counts database.LogCounts
	if f.listErr != nil {
		return counts, f.listErr
	}
	for _, log := range f.logs {
		if !since.IsZero() && log.CreatedAt.Before(since) {
			continue
		}
		counts.Total++
		if log.IsDeviation {
			counts.Deviations++
		}
	}
	return counts, nil
}

func (f *fakeStore) ListGoodsReceipts(ctx context.Context) ([]models.GoodsReceipt, error) {
	return nil, nil
}

func (f *fakeStore) CreateGoodsReceipt(ctx context.Context, receipt *models.GoodsReceipt) error {
	return nil
}

func (f *fakeStore) ListCleaningTasks(ctx context.Context) ([]models.CleaningTask, error) {
	return nil, nil
}

func (f *fakeStore) ListCleaningLogs(ctx context.Context) ([]models.CleaningLog, error) {
	return nil, nil
}

func (f *fakeStore) CreateCleaningLog(ctx context.Context, log *models.CleaningLog) error {
	return database.ErrCleaningTaskNotFound
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func ptr(v float64) *float64 { return &v }
