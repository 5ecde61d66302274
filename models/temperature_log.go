package models

import (
	"time"
)

const (
	StatusNormal    = "Normal"
	StatusDeviation = "Deviation"
	StatusResolved  = "Resolved"

	DefaultTemperatureUnit = "°C"
)

// TemperatureLog is one reading taken at a CCP. EquipmentName refers to
// CCP.Name by value; there is no foreign key.
type TemperatureLog struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	EquipmentName    string    `gorm:"type:varchar(100);index;not null" json:"equipmentName"`
	Temperature      float64   `gorm:"not null" json:"temperature"`
	Unit             string    `gorm:"type:varchar(10);not null;default:'°C'" json:"unit"`
	StaffName        string    `gorm:"type:varchar(100);not null" json:"staffName"`
	IsDeviation      bool      `gorm:"not null;default:false;index" json:"isDeviation"`
	CorrectiveAction *string   `gorm:"type:text" json:"correctiveAction"`
	Status           string    `gorm:"type:varchar(15);not null;default:'Normal'" json:"status"`
	CreatedAt        time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null" json:"updatedAt"`
}
