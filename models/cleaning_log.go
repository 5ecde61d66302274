package models

import (
	"time"
)

type CleaningLog struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	StaffName string       `gorm:"type:varchar(100);not null" json:"staffName"`
	TaskID    uint         `gorm:"not null;index" json:"taskId"`
	Task      CleaningTask `gorm:"foreignKey:TaskID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"task"`
	CreatedAt time.Time    `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"not null" json:"updatedAt"`
}
