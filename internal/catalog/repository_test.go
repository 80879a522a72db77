package catalog

import (
	"context"
	"testing"

	"github.com/dcarvalho/shopline-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  product_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	assets := `
CREATE TABLE IF NOT EXISTS assets (
  asset_id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  photo_url TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	priceCuts := `
CREATE TABLE IF NOT EXISTS price_cuts (
  price_cut_id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (product_id, name)
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(assets).Error)
	require.NoError(t, db.Exec(priceCuts).Error)
	return db
}

func TestListProductsOrderedByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := &models.Product{Name: "catalog-order-a"}
	require.NoError(t, db.Create(first).Error)
	second := &models.Product{Name: "catalog-order-b"}
	require.NoError(t, db.Create(second).Error)

	listed, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(listed), 2)

	var firstIdx, secondIdx int
	for i, p := range listed {
		switch p.ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	assert.Less(t, firstIdx, secondIdx)
}

func TestListAssetsScopedToProducts(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	wanted := &models.Product{Name: "catalog-assets-wanted"}
	require.NoError(t, db.Create(wanted).Error)
	other := &models.Product{Name: "catalog-assets-other"}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&models.Asset{ProductID: wanted.ID, PhotoURL: "https://cdn.example.com/a.jpg"}).Error)
	require.NoError(t, db.Create(&models.Asset{ProductID: wanted.ID, PhotoURL: "https://cdn.example.com/b.jpg"}).Error)
	require.NoError(t, db.Create(&models.Asset{ProductID: other.ID, PhotoURL: "https://cdn.example.com/c.jpg"}).Error)

	listed, err := repo.ListAssetsByProductIDs(ctx, []uint{wanted.ID})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, a := range listed {
		assert.Equal(t, wanted.ID, a.ProductID)
	}
}

func TestListPriceCutsScopedToProducts(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "catalog-cuts-product"}
	require.NoError(t, db.Create(product).Error)

	require.NoError(t, db.Create(&models.PriceCut{
		ProductID: product.ID,
		Name:      "standard",
		Price:     decimal.RequireFromString("19.99"),
	}).Error)
	require.NoError(t, db.Create(&models.PriceCut{
		ProductID: product.ID,
		Name:      "gold",
		Price:     decimal.RequireFromString("49.99"),
	}).Error)

	listed, err := repo.ListPriceCutsByProductIDs(ctx, []uint{product.ID})
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestListLookupsReturnEmptyForNoIDs(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	assets, err := repo.ListAssetsByProductIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, assets)

	cuts, err := repo.ListPriceCutsByProductIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, cuts)
}
