package models

import (
	"time"
)

type GoodsReceipt struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SupplierName string    `gorm:"type:varchar(150);not null" json:"supplierName"`
	ProductType  string    `gorm:"type:varchar(150);not null" json:"productType"`
	Temperature  *float64  `json:"temperature"`
	PackagingOk  bool      `gorm:"not null" json:"packagingOk"`
	ReceivedBy   string    `gorm:"type:varchar(100);not null" json:"receivedBy"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}
