package repository

import (
	"context"
	"testing"
	"time"

	"shop_manager/internal/domain/entities"
)

func TestInventoryGormRepository_DecrementQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := NewInventoryGormRepository(db)
	ctx := context.Background()

	p, err := repo.CreateProduct(ctx, entities.InventoryProduct{CompanyID: 1, Name: "Pads", Quantity: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DecrementQuantity(ctx, p.ID, 8); err != nil {
		t.Fatalf("decrement: %v", err)
	}

	got, err := repo.GetProduct(ctx, 1, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 12 {
		t.Fatalf("expected 12, got %v", got.Quantity)
	}

	// Stock can go negative, oversell is visible rather than blocked.
	if err := repo.DecrementQuantity(ctx, p.ID, 15); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	got, err = repo.GetProduct(ctx, 1, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != -3 {
		t.Fatalf("expected -3, got %v", got.Quantity)
	}
}

func TestInventoryGormRepository_ListDocumentMaterials(t *testing.T) {
	db := newTestDB(t)
	docs := NewDocumentGormRepository(db)
	repo := NewInventoryGormRepository(db)
	ctx := context.Background()

	if _, err := docs.Create(ctx, entities.Document{ID: "doc-1", CompanyID: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	items := []entities.LineItem{{
		Materials: []entities.Material{
			{Name: "Pads", ProductID: uintPtr(100), Quantity: floatPtr(2)},
			{Name: "Misc shop supply"}, // no product link, must be filtered out
			{Name: "Rotors", ProductID: uintPtr(200), Quantity: floatPtr(1)},
		},
	}}
	if err := docs.ReplaceLineItems(ctx, "doc-1", 1, items); err != nil {
		t.Fatalf("seed items: %v", err)
	}

	materials, err := repo.ListDocumentMaterials(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("expected 2 linked materials, got %d: %+v", len(materials), materials)
	}
	if *materials[0].ProductID != 100 || *materials[1].ProductID != 200 {
		t.Fatalf("expected insertion order, got %+v", materials)
	}
}

func TestInventoryGormRepository_ListHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewInventoryGormRepository(db)
	ctx := context.Background()

	mine, err := repo.CreateProduct(ctx, entities.InventoryProduct{CompanyID: 1, Name: "Pads"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	theirs, err := repo.CreateProduct(ctx, entities.InventoryProduct{CompanyID: 2, Name: "Pads"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	entries := []entities.InventoryProductHistory{
		{ProductID: mine.ID, Date: now.Add(-time.Hour), Quantity: 10, Type: entities.ProductHistoryPurchase},
		{ProductID: mine.ID, Date: now, Quantity: 2, Type: entities.ProductHistorySale},
		{ProductID: theirs.ID, Date: now, Quantity: 5, Type: entities.ProductHistoryPurchase},
	}
	for _, e := range entries {
		if _, err := repo.CreateHistory(ctx, e); err != nil {
			t.Fatalf("create history: %v", err)
		}
	}

	t.Run("newest first for own product", func(t *testing.T) {
		hist, err := repo.ListHistory(ctx, 1, mine.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(hist) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(hist))
		}
		if hist[0].Type != entities.ProductHistorySale || hist[1].Type != entities.ProductHistoryPurchase {
			t.Fatalf("expected newest first, got %+v", hist)
		}
	})

	t.Run("company scope is enforced via the product", func(t *testing.T) {
		hist, err := repo.ListHistory(ctx, 1, theirs.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(hist) != 0 {
			t.Fatalf("expected no cross-company entries, got %+v", hist)
		}
	})
}

func TestInventoryGormRepository_GetProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewInventoryGormRepository(db)
	ctx := context.Background()

	p, err := repo.CreateProduct(ctx, entities.InventoryProduct{CompanyID: 1, Name: "Pads"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetProduct(ctx, 2, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != 0 {
		t.Fatalf("expected zero product for wrong company, got %+v", got)
	}
}
