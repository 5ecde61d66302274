package models

import (
	"time"
)

// CCP is a critical control point. A nil limit is not enforced.
type CCP struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	MinLimit    *float64  `json:"minLimit"`
	MaxLimit    *float64  `json:"maxLimit"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
