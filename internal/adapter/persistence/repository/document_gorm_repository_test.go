package repository

import (
	"context"
	"testing"

	"shop_manager/internal/domain/entities"
)

func seedDocument(t *testing.T, repo *DocumentGormRepository, id string, companyID uint) entities.Document {
	t.Helper()
	doc, err := repo.Create(context.Background(), entities.Document{
		ID:        id,
		CompanyID: companyID,
		Title:     "Initial",
		Type:      entities.DocumentTypeEstimate,
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return doc
}

func TestDocumentGormRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentGormRepository(db)
	ctx := context.Background()

	seedDocument(t, repo, "doc-1", 1)

	t.Run("found with children", func(t *testing.T) {
		if err := repo.ReplacePhotos(ctx, "doc-1", []string{"a.jpg"}); err != nil {
			t.Fatalf("replace photos: %v", err)
		}
		items := []entities.LineItem{{
			Materials: []entities.Material{{Name: "Pads", Quantity: floatPtr(2)}},
			Tags:      []entities.ItemTag{{TagID: 5}},
		}}
		if err := repo.ReplaceLineItems(ctx, "doc-1", 1, items); err != nil {
			t.Fatalf("replace items: %v", err)
		}

		doc, err := repo.GetByID(ctx, 1, "doc-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if doc.ID != "doc-1" || len(doc.Photos) != 1 || len(doc.Items) != 1 {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if len(doc.Items[0].Materials) != 1 || doc.Items[0].Materials[0].Name != "Pads" {
			t.Fatalf("materials not preloaded: %+v", doc.Items[0])
		}
		if len(doc.Items[0].Tags) != 1 || doc.Items[0].Tags[0].TagID != 5 {
			t.Fatalf("tags not preloaded: %+v", doc.Items[0])
		}
	})

	t.Run("missing id returns zero value", func(t *testing.T) {
		doc, err := repo.GetByID(ctx, 1, "nope")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if doc.ID != "" {
			t.Fatalf("expected zero document, got %+v", doc)
		}
	})

	t.Run("other company cannot see it", func(t *testing.T) {
		doc, err := repo.GetByID(ctx, 2, "doc-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if doc.ID != "" {
			t.Fatalf("expected zero document, got %+v", doc)
		}
	})
}

func TestDocumentGormRepository_UpdateHeader(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentGormRepository(db)
	ctx := context.Background()

	doc := seedDocument(t, repo, "doc-1", 1)
	doc.Title = "Engine swap"
	doc.GrandTotal = 500
	doc.Due = 500
	if err := repo.UpdateHeader(ctx, doc); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Zero values overwrite too, the header write is total.
	if err := repo.UpdateHeader(ctx, entities.Document{ID: "doc-1", CompanyID: 1, Title: "Paid off"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, 1, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Paid off" || got.GrandTotal != 0 || got.Due != 0 {
		t.Fatalf("zero values must be written: %+v", got)
	}
	if got.Type != entities.DocumentTypeEstimate {
		t.Fatalf("type is not a header column, got %s", got.Type)
	}
}

func TestDocumentGormRepository_SetType(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentGormRepository(db)
	ctx := context.Background()

	seedDocument(t, repo, "doc-1", 1)
	if err := repo.SetType(ctx, "doc-1", entities.DocumentTypeInvoice); err != nil {
		t.Fatalf("set type: %v", err)
	}

	got, err := repo.GetByID(ctx, 1, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != entities.DocumentTypeInvoice {
		t.Fatalf("expected Invoice, got %s", got.Type)
	}
}

func TestDocumentGormRepository_ReplacePhotos(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentGormRepository(db)
	ctx := context.Background()

	seedDocument(t, repo, "doc-1", 1)

	if err := repo.ReplacePhotos(ctx, "doc-1", []string{"a.jpg", "b.jpg"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.ReplacePhotos(ctx, "doc-1", []string{"c.jpg"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	photos, err := repo.ListPhotos(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(photos) != 1 || photos[0].Photo != "c.jpg" {
		t.Fatalf("expected exactly the new set, got %+v", photos)
	}

	// Empty set clears everything.
	if err := repo.ReplacePhotos(ctx, "doc-1", nil); err != nil {
		t.Fatalf("replace: %v", err)
	}
	photos, err = repo.ListPhotos(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected no photos, got %+v", photos)
	}
}

func TestDocumentGormRepository_ReplaceLineItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentGormRepository(db)
	ctx := context.Background()

	seedDocument(t, repo, "doc-1", 1)

	set := func() []entities.LineItem {
		return []entities.LineItem{
			{
				ServiceID: uintPtr(3),
				Materials: []entities.Material{
					{Name: "Pads", ProductID: uintPtr(100), Quantity: floatPtr(2)},
					{Name: "Shop towels"},
				},
				Tags: []entities.ItemTag{{TagID: 1}, {TagID: 2}},
			},
			{LaborID: uintPtr(8)},
		}
	}

	apply := func() {
		if err := repo.ReplaceLineItems(ctx, "doc-1", 1, set()); err != nil {
			t.Fatalf("replace: %v", err)
		}
	}

	// Applying the same payload twice leaves exactly one copy of the set.
	apply()
	apply()

	doc, err := repo.GetByID(ctx, 1, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(doc.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(doc.Items))
	}

	var materialCount, tagCount int64
	if err := db.Model(&entities.Material{}).Where("document_id = ?", "doc-1").Count(&materialCount).Error; err != nil {
		t.Fatalf("count materials: %v", err)
	}
	if err := db.Model(&entities.ItemTag{}).Count(&tagCount).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if materialCount != 2 || tagCount != 2 {
		t.Fatalf("expected 2 materials and 2 tags, got %d and %d", materialCount, tagCount)
	}

	for _, m := range doc.Items[0].Materials {
		if m.CompanyID != 1 || m.DocumentID != "doc-1" {
			t.Fatalf("material not scoped: %+v", m)
		}
	}
}

func TestDocumentGormRepository_ListByCompany(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentGormRepository(db)
	ctx := context.Background()

	seedDocument(t, repo, "doc-1", 1)
	seedDocument(t, repo, "doc-2", 1)
	seedDocument(t, repo, "doc-3", 2)

	docs, err := repo.ListByCompany(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for _, d := range docs {
		if d.CompanyID != 1 {
			t.Fatalf("leaked document from another company: %+v", d)
		}
	}
}
