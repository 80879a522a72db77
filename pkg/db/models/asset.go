package models

import (
	"time"
)

// Asset is a product photo reference.
type Asset struct {
	ID        uint      `gorm:"column:asset_id;primaryKey;autoIncrement"`
	ProductID uint      `gorm:"column:product_id;not null;index"`
	PhotoURL  string    `gorm:"column:photo_url;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Asset) TableName() string { return "assets" }
