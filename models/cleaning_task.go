package models

import (
	"time"
)

const (
	FrequencyDaily  = "Daily"
	FrequencyWeekly = "Weekly"
)

type CleaningTask struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(150);not null" json:"title"`
	Frequency string    `gorm:"type:varchar(10);not null;default:'Daily'" json:"frequency"`
	Area      string    `gorm:"type:varchar(100)" json:"area"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
