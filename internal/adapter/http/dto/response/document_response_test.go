package response

import (
	"testing"

	"shop_manager/internal/domain/entities"
)

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFromDocument(t *testing.T) {
	d := entities.Document{
		ID:         "doc-1",
		Title:      "Brake job",
		Type:       entities.DocumentTypeEstimate,
		ClientID:   uintPtr(7),
		Subtotal:   180,
		GrandTotal: 194.4,
		Photos: []entities.DocumentPhoto{
			{Photo: "a.jpg"},
			{Photo: "b.jpg"},
		},
		Items: []entities.LineItem{
			{
				ID:        1,
				ServiceID: uintPtr(3),
				Materials: []entities.Material{
					{ID: 10, Name: "Pads", ProductID: uintPtr(100), Quantity: floatPtr(2), Sell: floatPtr(30)},
				},
				Tags: []entities.ItemTag{{TagID: 5}, {TagID: 6}},
			},
		},
	}

	res := FromDocument(d)
	if res.ID != "doc-1" || res.Type != "Estimate" || res.Title != "Brake job" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ClientID == nil || *res.ClientID != 7 {
		t.Fatalf("unexpected client id: %+v", res)
	}
	if len(res.Photos) != 2 || res.Photos[0] != "a.jpg" {
		t.Fatalf("unexpected photos: %+v", res.Photos)
	}
	if len(res.Items) != 1 || len(res.Items[0].Materials) != 1 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if got := res.Items[0].TagIDs; len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Fatalf("unexpected tag ids: %+v", got)
	}
}

func TestFromDocument_EmptyCollections(t *testing.T) {
	res := FromDocument(entities.Document{ID: "doc-1"})
	// Collections serialize as [], never null.
	if res.Photos == nil || res.Items == nil {
		t.Fatalf("expected empty slices, got %+v", res)
	}
}
