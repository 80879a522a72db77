package purchases

import (
	"context"

	"github.com/dcarvalho/shopline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes purchase persistence plus the lookups the purchase flow
// and history assembly need.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindPriceCut resolves the unique (product_id, name) tier.
func (r *Repository) FindPriceCut(ctx context.Context, productID uint, name string) (*models.PriceCut, error) {
	var cut models.PriceCut
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND name = ?", productID, name).
		First(&cut).Error; err != nil {
		return nil, err
	}
	return &cut, nil
}

// CreatePurchase inserts the purchase row. Rows are insert-only; nothing in
// this service ever mutates or deletes them.
func (r *Repository) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// ListByUserID returns every purchase owned by the user, oldest first.
func (r *Repository) ListByUserID(ctx context.Context, userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_id").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListPriceCutsByIDs loads the tiers referenced by a purchase set.
func (r *Repository) ListPriceCutsByIDs(ctx context.Context, ids []uint) ([]models.PriceCut, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cuts []models.PriceCut
	if err := r.db.WithContext(ctx).Where("price_cut_id IN ?", ids).Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}

// ListProductsByIDs loads the products referenced by a tier set.
func (r *Repository) ListProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListAssetsByProductIDs loads the assets for the referenced products.
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
