package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/models"
)

// openFileStore opens a seeded file-backed SQLite store the way main does.
func openFileStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := InitDB(config.DatabaseConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "haccp.db"),
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	store := NewGormStore(db)
	t.Cleanup(func() { _ = store.Close() })

	_, err = Prepare(context.Background(), db, config.SeedIfEmpty)
	require.NoError(t, err)
	return store
}

func TestFileStoreConcurrentWrites(t *testing.T) {
	store := openFileStore(t)
	ctx := context.Background()

	tasks, err := store.ListCleaningTasks(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	const writers = 40
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		if err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}

	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			status := models.StatusNormal
			if i%12 > 8 {
				status = models.StatusDeviation
			}
			record(store.CreateTemperatureLog(ctx, &models.TemperatureLog{
				EquipmentName: "Kylskåp (Fridge)",
				Temperature:   float64(i % 12),
				Unit:          models.DefaultTemperatureUnit,
				StaffName:     "Anna",
				IsDeviation:   i%12 > 8,
				Status:        status,
			}))
		}(i)
		go func(i int) {
			defer wg.Done()
			record(store.CreateCleaningLog(ctx, &models.CleaningLog{
				TaskID:    tasks[i%len(tasks)].ID,
				StaffName: "Omar",
			}))
		}(i)
	}
	wg.Wait()

	require.Empty(t, errs)

	logs, err := store.ListTemperatureLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, writers)

	cleaning, err := store.ListCleaningLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, cleaning, writers)
}

func TestCountTemperatureLogsConsistentDuringWrites(t *testing.T) {
	store := openFileStore(t)
	ctx := context.Background()

	const inserts = 100
	done := make(chan error, 1)
	go func() {
		for i := 0; i < inserts; i++ {
			err := store.CreateTemperatureLog(ctx, &models.TemperatureLog{
				EquipmentName: "Frys (Freezer)",
				Temperature:   -5,
				Unit:          models.DefaultTemperatureUnit,
				StaffName:     "Erik",
				IsDeviation:   true,
				Status:        models.StatusDeviation,
			})
			if err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	var writeErr error
	for running := true; running; {
		select {
		case writeErr = <-done:
			running = false
		default:
		}
		counts, err := store.CountTemperatureLogs(ctx, time.Time{})
		require.NoError(t, err)
		require.LessOrEqual(t, counts.Deviations, counts.Total)
		// every row is a deviation, so one snapshot must report them equal
		require.Equal(t, counts.Total, counts.Deviations)
	}
	require.NoError(t, writeErr)

	counts, err := store.CountTemperatureLogs(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, LogCounts{Total: inserts, Deviations: inserts}, counts)
}
