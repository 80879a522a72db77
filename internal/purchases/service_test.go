package purchases

import (
	"context"
	"testing"

	"github.com/dcarvalho/shopline-backend/pkg/db/models"
	pkgerrors "github.com/dcarvalho/shopline-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubPurchasesRepo struct {
	cut       *models.PriceCut
	created   *models.Purchase
	purchases []models.Purchase
	cuts      []models.PriceCut
	products  []models.Product
	assets    []models.Asset

	createErr error
}

func (s *stubPurchasesRepo) FindPriceCut(ctx context.Context, productID uint, name string) (*models.PriceCut, error) {
	if s.cut == nil || s.cut.ProductID != productID || s.cut.Name != name {
		return nil, gorm.ErrRecordNotFound
	}
	return s.cut, nil
}

func (s *stubPurchasesRepo) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	if s.createErr != nil {
		return s.createErr
	}
	purchase.ID = uint(len(s.purchases) + 1)
	s.created = purchase
	s.purchases = append(s.purchases, *purchase)
	return nil
}

func (s *stubPurchasesRepo) ListByUserID(ctx context.Context, userID uint) ([]models.Purchase, error) {
	var out []models.Purchase
	for _, p := range s.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPurchasesRepo) ListPriceCutsByIDs(ctx context.Context, ids []uint) ([]models.PriceCut, error) {
	return s.cuts, nil
}

func (s *stubPurchasesRepo) ListProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubPurchasesRepo) ListAssetsByProductIDs(ctx context.Context, productIDs []uint) ([]models.Asset, error) {
	return s.assets, nil
}

type stubUsersRepo struct {
	user *models.User
}

func (s stubUsersRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.user == nil || s.user.Username != username {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func standardCut() *models.PriceCut {
	return &models.PriceCut{
		ID:        20,
		ProductID: 1,
		Name:      "standard",
		Price:     decimal.RequireFromString("19.99"),
	}
}

func TestBuyComputesTotalWithDecimalMath(t *testing.T) {
	repo := &stubPurchasesRepo{cut: standardCut()}
	svc, err := NewService(repo, stubUsersRepo{user: &models.User{ID: 1, Username: "alice"}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.Buy(context.Background(), "alice", BuyRequest{
		ProductID:    1,
		Quantity:     3,
		PriceCutName: "standard",
	})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}

	if result.TotalPrice != "59.97" {
		t.Fatalf("expected total 59.97 got %s", result.TotalPrice)
	}
	if result.Price != "19.99" {
		t.Fatalf("expected price 19.99 got %s", result.Price)
	}
	if result.Username != "alice" || result.PriceCutName != "standard" || result.Quantity != 3 {
		t.Fatalf("unexpected sanitized purchase %+v", result)
	}

	if repo.created == nil {
		t.Fatal("expected purchase to be persisted")
	}
	if !repo.created.TotalPrice.Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("expected persisted total 59.97 got %s", repo.created.TotalPrice)
	}
	if repo.created.UserID != 1 || repo.created.PriceCutID != 20 {
		t.Fatalf("unexpected persisted purchase %+v", repo.created)
	}
}

func TestBuyAvoidsFloatDrift(t *testing.T) {
	cut := standardCut()
	cut.Price = decimal.RequireFromString("0.10")
	repo := &stubPurchasesRepo{cut: cut}
	svc, err := NewService(repo, stubUsersRepo{user: &models.User{ID: 1, Username: "alice"}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.Buy(context.Background(), "alice", BuyRequest{
		ProductID:    1,
		Quantity:     3,
		PriceCutName: "standard",
	})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if result.TotalPrice != "0.30" {
		t.Fatalf("expected exact total 0.30 got %s", result.TotalPrice)
	}
}

func TestBuyUnknownTierReturnsNotFound(t *testing.T) {
	repo := &stubPurchasesRepo{cut: standardCut()}
	svc, err := NewService(repo, stubUsersRepo{user: &models.User{ID: 1, Username: "alice"}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Buy(context.Background(), "alice", BuyRequest{
		ProductID:    1,
		Quantity:     1,
		PriceCutName: "platinum",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
	if typed.Message() != "product not available" {
		t.Fatalf("unexpected message %s", typed.Message())
	}
}

func TestBuyUnknownUserReturnsNotFound(t *testing.T) {
	repo := &stubPurchasesRepo{cut: standardCut()}
	svc, err := NewService(repo, stubUsersRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Buy(context.Background(), "ghost", BuyRequest{
		ProductID:    1,
		Quantity:     1,
		PriceCutName: "standard",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
	if typed.Message() != "user not found" {
		t.Fatalf("unexpected message %s", typed.Message())
	}
}

func TestHistoryAssemblesNestedEntries(t *testing.T) {
	desc := "Rare holo card"
	repo := &stubPurchasesRepo{
		purchases: []models.Purchase{
			{ID: 1, UserID: 1, PriceCutID: 20, Quantity: 3, TotalPrice: decimal.RequireFromString("59.97")},
			{ID: 2, UserID: 1, PriceCutID: 21, Quantity: 1, TotalPrice: decimal.RequireFromString("49.99")},
		},
		cuts: []models.PriceCut{
			{ID: 20, ProductID: 1, Name: "standard", Price: decimal.RequireFromString("19.99")},
			{ID: 21, ProductID: 1, Name: "gold", Price: decimal.RequireFromString("49.99")},
		},
		products: []models.Product{
			{ID: 1, Name: "Charizard", Description: &desc},
		},
		assets: []models.Asset{
			{ID: 10, ProductID: 1, PhotoURL: "https://cdn.example.com/charizard.jpg"},
		},
	}
	svc, err := NewService(repo, stubUsersRepo{user: &models.User{ID: 1, Username: "alice"}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	entries, err := svc.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}

	first := entries[0]
	if first.Quantity != 3 || !first.TotalPrice.Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if first.PriceCut.Name != "standard" {
		t.Fatalf("expected standard tier got %s", first.PriceCut.Name)
	}
	if first.PriceCut.Product.Name != "Charizard" {
		t.Fatalf("expected product name got %s", first.PriceCut.Product.Name)
	}
	if len(first.PriceCut.Product.Assets) != 1 {
		t.Fatalf("expected 1 asset got %d", len(first.PriceCut.Product.Assets))
	}

	second := entries[1]
	if second.PriceCut.Name != "gold" {
		t.Fatalf("expected gold tier got %s", second.PriceCut.Name)
	}
}

func TestHistoryEmptyForUserWithoutPurchases(t *testing.T) {
	repo := &stubPurchasesRepo{}
	svc, err := NewService(repo, stubUsersRepo{user: &models.User{ID: 1, Username: "alice"}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	entries, err := svc.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if entries == nil {
		t.Fatal("expected empty slice, not nil")
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries got %d", len(entries))
	}
}

func TestHistoryUnknownUserReturnsNotFound(t *testing.T) {
	svc, err := NewService(&stubPurchasesRepo{}, stubUsersRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.History(context.Background(), "ghost")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestHistoryFailsOnDanglingPriceCut(t *testing.T) {
	repo := &stubPurchasesRepo{
		purchases: []models.Purchase{
			{ID: 1, UserID: 1, PriceCutID: 99, Quantity: 1, TotalPrice: decimal.RequireFromString("5.00")},
		},
	}
	svc, err := NewService(repo, stubUsersRepo{user: &models.User{ID: 1, Username: "alice"}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.History(context.Background(), "alice")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error for dangling reference, got %v", err)
	}
}
