package purchases

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcarvalho/shopline-backend/internal/catalog"
	"github.com/dcarvalho/shopline-backend/pkg/db/models"
	pkgerrors "github.com/dcarvalho/shopline-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the purchases controllers.
type Service interface {
	Buy(ctx context.Context, username string, req BuyRequest) (*SanitizedPurchase, error)
	History(ctx context.Context, username string) ([]HistoryEntry, error)
}

type repository interface {
	FindPriceCut(ctx context.Context, productID uint, name string) (*models.PriceCut, error)
	CreatePurchase(ctx context.Context, purchase *models.Purchase) error
	ListByUserID(ctx context.Context, userID uint) ([]models.Purchase, error)
	ListPriceCutsByIDs(ctx context.Context, ids []uint) ([]models.PriceCut, error)
	ListProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	ListAssetsByProductIDs(ctx context.Context, productIDs []uint) ([]models.Asset, error)
}

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type service struct {
	repo  repository
	users userRepository
}

// NewService constructs a purchases service with the provided dependencies.
func NewService(repo repository, users userRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("purchases repository is required")
	}
	if users == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &service{repo: repo, users: users}, nil
}

// Buy resolves the requested price tier and user, computes the total with
// decimal arithmetic, persists the purchase, and returns the sanitized view.
// The total is frozen at insert time; later price changes never touch it.
func (s *service) Buy(ctx context.Context, username string, req BuyRequest) (*SanitizedPurchase, error) {
	cut, err := s.repo.FindPriceCut(ctx, req.ProductID, req.PriceCutName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not available")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup price cut")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Reachable under valid auth when the user row was removed after
		// token issuance.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	total := cut.Price.Mul(decimal.NewFromInt(int64(req.Quantity))).Round(2)

	purchase := &models.Purchase{
		UserID:     user.ID,
		PriceCutID: cut.ID,
		Quantity:   req.Quantity,
		TotalPrice: total,
	}
	if err := s.repo.CreatePurchase(ctx, purchase); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create purchase")
	}

	return &SanitizedPurchase{
		Username:     user.Username,
		PriceCutName: cut.Name,
		Price:        cut.Price.StringFixed(2),
		Quantity:     purchase.Quantity,
		TotalPrice:   purchase.TotalPrice.StringFixed(2),
	}, nil
}

// History returns every purchase owned by the user with its tier, product,
// and assets nested. A user with no purchases gets an empty slice.
func (s *service) History(ctx context.Context, username string) ([]HistoryEntry, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	purchases, err := s.repo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list purchases")
	}

	cutIDs := make([]uint, 0, len(purchases))
	seenCuts := make(map[uint]bool, len(purchases))
	for _, p := range purchases {
		if !seenCuts[p.PriceCutID] {
			seenCuts[p.PriceCutID] = true
			cutIDs = append(cutIDs, p.PriceCutID)
		}
	}

	cuts, err := s.repo.ListPriceCutsByIDs(ctx, cutIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list price cuts")
	}
	cutsByID := make(map[uint]models.PriceCut, len(cuts))
	productIDs := make([]uint, 0, len(cuts))
	seenProducts := make(map[uint]bool, len(cuts))
	for _, c := range cuts {
		cutsByID[c.ID] = c
		if !seenProducts[c.ProductID] {
			seenProducts[c.ProductID] = true
			productIDs = append(productIDs, c.ProductID)
		}
	}

	products, err := s.repo.ListProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	productsByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	assets, err := s.repo.ListAssetsByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list assets")
	}
	assetsByProduct := make(map[uint][]catalog.AssetDTO, len(products))
	for _, a := range assets {
		assetsByProduct[a.ProductID] = append(assetsByProduct[a.ProductID], catalog.AssetDTO{PhotoURL: a.PhotoURL})
	}

	entries := make([]HistoryEntry, 0, len(purchases))
	for _, p := range purchases {
		cut, ok := cutsByID[p.PriceCutID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "purchase references missing price cut")
		}
		product, ok := productsByID[cut.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "price cut references missing product")
		}

		productAssets := assetsByProduct[product.ID]
		if productAssets == nil {
			productAssets = []catalog.AssetDTO{}
		}

		entries = append(entries, HistoryEntry{
			Quantity:   p.Quantity,
			TotalPrice: p.TotalPrice,
			PriceCut: HistoryPriceCutDTO{
				Name:  cut.Name,
				Price: cut.Price,
				Product: HistoryProductDTO{
					Name:        product.Name,
					Description: product.Description,
					Assets:      productAssets,
				},
			},
		})
	}

	return entries, nil
}
