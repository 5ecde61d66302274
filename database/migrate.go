package database

import (
	"fmt"

	"github.com/yeremiapane/haccp-app/models"
	"github.com/yeremiapane/haccp-app/utils"
	"gorm.io/gorm"
)

// Tables in dependency order: referenced tables come first.
func schemaModels() []interface{} {
	return []interface{}{
		&models.CCP{},
		&models.TemperatureLog{},
		&models.GoodsReceipt{},
		&models.CleaningTask{},
		&models.CleaningLog{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schemaModels()...); err != nil {
		return fmt.Errorf("failed to AutoMigrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// DropAll removes every table, children first.
func DropAll(db *gorm.DB) error {
	tables := schemaModels()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
