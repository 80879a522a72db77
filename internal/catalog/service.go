package catalog

import (
	"context"
	"fmt"

	"github.com/dcarvalho/shopline-backend/pkg/db/models"
	pkgerrors "github.com/dcarvalho/shopline-backend/pkg/errors"
)

// Service defines the behavior needed by the catalog controller.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
}

type repository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListAssetsByProductIDs(ctx context.Context, productIDs []uint) ([]models.Asset, error)
	ListPriceCutsByProductIDs(ctx context.Context, productIDs []uint) ([]models.PriceCut, error)
}

type service struct {
	repo repository
}

// NewService constructs a catalog service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

// ListProducts returns the full catalog with nested assets and price cuts.
// No filtering or paging; an empty store yields an empty slice, not an error.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	assets, err := s.repo.ListAssetsByProductIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list assets")
	}
	cuts, err := s.repo.ListPriceCutsByProductIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list price cuts")
	}

	assetsByProduct := make(map[uint][]AssetDTO, len(products))
	for _, a := range assets {
		assetsByProduct[a.ProductID] = append(assetsByProduct[a.ProductID], AssetDTO{PhotoURL: a.PhotoURL})
	}
	cutsByProduct := make(map[uint][]PriceCutDTO, len(products))
	for _, c := range cuts {
		cutsByProduct[c.ProductID] = append(cutsByProduct[c.ProductID], PriceCutDTO{Name: c.Name, Price: c.Price})
	}

	result := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dto := ProductDTO{
			ProductID:   p.ID,
			Name:        p.Name,
			Description: p.Description,
			Assets:      assetsByProduct[p.ID],
			PriceCuts:   cutsByProduct[p.ID],
		}
		if dto.Assets == nil {
			dto.Assets = []AssetDTO{}
		}
		if dto.PriceCuts == nil {
			dto.PriceCuts = []PriceCutDTO{}
		}
		result = append(result, dto)
	}

	return result, nil
}
