package catalog

import (
	"context"

	"github.com/dcarvalho/shopline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes catalog persistence. Associations are loaded with
// explicit per-table fetches and assembled in memory rather than through
// implicit ORM preloading.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListProducts returns every product ordered by identifier.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListAssetsByProductIDs returns the assets belonging to the given products.
func (r *Repository) ListAssetsByProductIDs(ctx context.Context, productIDs []uint) ([]models.Asset, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var assets []models.Asset
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("asset_id").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// ListPriceCutsByProductIDs returns the price cuts belonging to the given products.
func (r *Repository) ListPriceCutsByProductIDs(ctx context.Context, productIDs []uint) ([]models.PriceCut, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var cuts []models.PriceCut
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("price_cut_id").
		Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}
