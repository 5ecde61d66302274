package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/models"
)

var zeroTime time.Time

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// openTestDB already seeded once
	result, err := SeedIfEmpty(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, result)

	var ccps, tasks int64
	require.NoError(t, db.Model(&models.CCP{}).Count(&ccps).Error)
	require.NoError(t, db.Model(&models.CleaningTask{}).Count(&tasks).Error)
	assert.Equal(t, int64(4), ccps)
	assert.Equal(t, int64(5), tasks)
}

func TestPrepareKeepsLogsUnlessReset(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewGormStore(db)

	require.NoError(t, store.CreateTemperatureLog(ctx, &models.TemperatureLog{
		EquipmentName: "Kylskåp (Fridge)", Temperature: 5, Unit: "°C", StaffName: "Anna", Status: models.StatusNormal,
	}))

	_, err := Prepare(ctx, db, config.SeedIfEmpty)
	require.NoError(t, err)
	counts, err := store.CountTemperatureLogs(ctx, zeroTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Total)

	result, err := Prepare(ctx, db, config.SeedReset)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{CCPs: 4, CleaningTasks: 5}, result)
	counts, err = store.CountTemperatureLogs(ctx, zeroTime)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Total)
}

func TestSeedOnlyFillsEmptyTables(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Where("1 = 1").Delete(&models.CleaningTask{}).Error)

	result, err := SeedIfEmpty(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{CCPs: 0, CleaningTasks: 5}, result)
}
