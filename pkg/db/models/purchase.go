package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records one completed buy. The total is computed at purchase time
// and never recomputed, so later price changes leave history untouched.
type Purchase struct {
	ID         uint            `gorm:"column:purchase_id;primaryKey;autoIncrement"`
	UserID     uint            `gorm:"column:user_id;not null;index"`
	PriceCutID uint            `gorm:"column:price_cut_id;not null;index"`
	Quantity   int             `gorm:"column:quantity;not null"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Purchase) TableName() string { return "purchases" }
