package request

import (
	"testing"

	"shop_manager/internal/domain/entities"
)

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestUpdateDocumentRequest_ToInput(t *testing.T) {
	r := UpdateDocumentRequest{
		Header: DocumentHeaderRequest{Title: "Brake job", GrandTotal: 194.4},
		Photos: []string{"a.jpg"},
		Items: []LineItemRequest{
			{
				ServiceID: uintPtr(3),
				Materials: []MaterialRequest{{Name: "Pads", ProductID: uintPtr(100), Quantity: floatPtr(2)}},
				TagIDs:    []uint{5},
			},
		},
		Tasks: []TaskRequest{
			{Task: "Fix brakes:replace pads"},
			{ID: uintPtr(42), Task: "Call client"},
		},
	}

	in := r.ToInput("doc-1")
	if in.ID != "doc-1" || in.Header.Title != "Brake job" || in.Header.GrandTotal != 194.4 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 1 || len(in.Items[0].Materials) != 1 || in.Items[0].Materials[0].Name != "Pads" {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if len(in.Tasks) != 2 {
		t.Fatalf("unexpected tasks: %+v", in.Tasks)
	}
	if in.Tasks[0].ID != nil || in.Tasks[0].Text != "Fix brakes:replace pads" {
		t.Fatalf("unexpected first task: %+v", in.Tasks[0])
	}
	if in.Tasks[1].ID == nil || *in.Tasks[1].ID != 42 {
		t.Fatalf("unexpected second task: %+v", in.Tasks[1])
	}
}

func TestCreateDocumentRequest_ToInput(t *testing.T) {
	r := CreateDocumentRequest{
		ID:     "doc-1",
		Type:   "Invoice",
		Header: DocumentHeaderRequest{Title: "Tow-in"},
	}

	in := r.ToInput()
	if in.ID != "doc-1" || in.Type != entities.DocumentTypeInvoice {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Header.Title != "Tow-in" {
		t.Fatalf("unexpected header: %+v", in.Header)
	}
}
