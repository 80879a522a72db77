package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceCut is a named price tier scoped to a single product. The
// (product_id, name) pair identifies a tier, enforced with a unique index.
type PriceCut struct {
	ID        uint            `gorm:"column:price_cut_id;primaryKey;autoIncrement"`
	ProductID uint            `gorm:"column:product_id;not null;uniqueIndex:idx_price_cuts_product_name"`
	Name      string          `gorm:"column:name;not null;uniqueIndex:idx_price_cuts_product_name"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (PriceCut) TableName() string { return "price_cuts" }
