package purchases

import (
	"github.com/dcarvalho/shopline-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// BuyRequest is the payload accepted by POST /buyProducts.
type BuyRequest struct {
	ProductID    uint   `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	PriceCutName string `json:"price_cut_name" validate:"required"`
}

// SanitizedPurchase is the display-safe projection returned after a buy.
// Prices are fixed two-decimal strings; internal identifiers are excluded.
type SanitizedPurchase struct {
	Username     string `json:"username"`
	PriceCutName string `json:"price_cut_name"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
	TotalPrice   string `json:"total_price"`
}

// HistoryEntry is one purchase in GET /getPurchases, nested price cut →
// product → assets. The capitalized keys are the wire contract.
type HistoryEntry struct {
	Quantity   int                `json:"quantity"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	PriceCut   HistoryPriceCutDTO `json:"PriceCut"`
}

// HistoryPriceCutDTO nests the tier and its product inside a history entry.
type HistoryPriceCutDTO struct {
	Name    string            `json:"name"`
	Price   decimal.Decimal   `json:"price"`
	Product HistoryProductDTO `json:"Product"`
}

// HistoryProductDTO nests the product and its assets inside a history entry.
type HistoryProductDTO struct {
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Assets      []catalog.AssetDTO `json:"Assets"`
}
