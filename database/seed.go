package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/models"
	"github.com/yeremiapane/haccp-app/utils"
	"gorm.io/gorm"
)

func limit(v float64) *float64 { return &v }

// DefaultCCPs is the control point catalog of a typical Swedish restaurant.
func DefaultCCPs() []models.CCP {
	return []models.CCP{
		{Name: "Kylskåp (Fridge)", MaxLimit: limit(8), Description: "Standard cold storage"},
		{Name: "Frys (Freezer)", MaxLimit: limit(-18), Description: "Frozen storage"},
		{Name: "Varmhållning (Hot Holding)", MinLimit: limit(60), Description: "Food kept hot for service"},
		{Name: "Nedkylning (Cooling)", Description: "Cooling from 60°C to 8°C within 4 hours"},
	}
}

func DefaultCleaningTasks() []models.CleaningTask {
	return []models.CleaningTask{
		{Title: "Rengör arbetsbänkar (Clean benches)", Frequency: models.FrequencyDaily, Area: "Kitchen"},
		{Title: "Töm sopor (Empty trash)", Frequency: models.FrequencyDaily, Area: "General"},
		{Title: "Diskmaskin temp check", Frequency: models.FrequencyDaily, Area: "Dishwash"},
		{Title: "Storstädning kylar (Deep clean fridges)", Frequency: models.FrequencyWeekly, Area: "Kitchen"},
		{Title: "Rengör fläktfilter (Clean vent filters)", Frequency: models.FrequencyWeekly, Area: "Kitchen"},
	}
}

// SeedResult reports how many catalog rows were inserted.
type SeedResult struct {
	CCPs          int
	CleaningTasks int
}

// Prepare migrates the schema and seeds the catalog. In SeedReset mode every
// table, logs included, is dropped first. In SeedIfEmpty mode each catalog
// table is only filled when it has no rows.
func Prepare(ctx context.Context, db *gorm.DB, mode string) (SeedResult, error) {
	if mode == config.SeedReset {
		utils.InfoLogger.Warn("SEED_MODE=reset: dropping all HACCP tables")
		if err := DropAll(db); err != nil {
			return SeedResult{}, err
		}
	}
	if err := AutoMigrate(db); err != nil {
		return SeedResult{}, err
	}
	return SeedIfEmpty(ctx, db)
}

func SeedIfEmpty(ctx context.Context, db *gorm.DB) (SeedResult, error) {
	var result SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CCP{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count ccps: %w", err)
		}
		if count == 0 {
			ccps := DefaultCCPs()
			if err := tx.Create(&ccps).Error; err != nil {
				return fmt.Errorf("seed ccps: %w", err)
			}
			result.CCPs = len(ccps)
		}

		if err := tx.Model(&models.CleaningTask{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count cleaning tasks: %w", err)
		}
		if count == 0 {
			tasks := DefaultCleaningTasks()
			if err := tx.Create(&tasks).Error; err != nil {
				return fmt.Errorf("seed cleaning tasks: %w", err)
			}
			result.CleaningTasks = len(tasks)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"ccps":           result.CCPs,
		"cleaning_tasks": result.CleaningTasks,
	}).Info("catalog seed finished")
	return result, nil
}
