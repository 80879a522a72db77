package catalog

import (
	"github.com/shopspring/decimal"
)

// ProductDTO is the catalog projection returned by GET /getProducts. The
// capitalized association keys are part of the wire contract consumed by
// existing clients.
type ProductDTO struct {
	ProductID   uint          `json:"product_id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Assets      []AssetDTO    `json:"Assets"`
	PriceCuts   []PriceCutDTO `json:"PriceCuts"`
}

// AssetDTO exposes only the photo URL of a product asset.
type AssetDTO struct {
	PhotoURL string `json:"photo_url"`
}

// PriceCutDTO exposes the tier name and its price.
type PriceCutDTO struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
