package request

import (
	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase"
)

// DocumentHeaderRequest carries the complete header field set. The update
// contract is full-overwrite: omitted fields are written as their zero
// values, so the UI always sends everything.
type DocumentHeaderRequest struct {
	Title     string `json:"title"`
	ClientID  *uint  `json:"client_id"`
	VehicleID *uint  `json:"vehicle_id"`
	StatusID  *uint  `json:"status_id"`

	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Tax           float64 `json:"tax"`
	Deposit       float64 `json:"deposit"`
	DepositNotes  string  `json:"deposit_notes"`
	DepositMethod string  `json:"deposit_method"`
	GrandTotal    float64 `json:"grand_total"`
	Due           float64 `json:"due"`

	InternalNotes    string `json:"internal_notes"`
	Terms            string `json:"terms"`
	Policy           string `json:"policy"`
	CustomerNotes    string `json:"customer_notes"`
	CustomerComments string `json:"customer_comments"`
}

type MaterialRequest struct {
	Name       string   `json:"name"`
	VendorID   *uint    `json:"vendor_id"`
	CategoryID *uint    `json:"category_id"`
	ProductID  *uint    `json:"product_id"`
	Notes      string   `json:"notes"`
	Quantity   *float64 `json:"quantity"`
	Cost       *float64 `json:"cost"`
	Sell       *float64 `json:"sell"`
	Discount   *float64 `json:"discount"`
}

type LineItemRequest struct {
	ServiceID *uint             `json:"service_id"`
	LaborID   *uint             `json:"labor_id"`
	Materials []MaterialRequest `json:"materials"`
	TagIDs    []uint            `json:"tag_ids"`
}

// TaskRequest carries a free-form "title:description" text; a missing id
// means create, a present id means update in place.
type TaskRequest struct {
	ID   *uint  `json:"id"`
	Task string `json:"task"`
}

type CreateDocumentRequest struct {
	ID     string                `json:"id" binding:"required"`
	Type   string                `json:"type"`
	Header DocumentHeaderRequest `json:"header"`
	Photos []string              `json:"photos"`
	Items  []LineItemRequest     `json:"items"`
}

type UpdateDocumentRequest struct {
	Header DocumentHeaderRequest `json:"header"`
	Photos []string              `json:"photos"`
	Items  []LineItemRequest     `json:"items"`
	Tasks  []TaskRequest         `json:"tasks"`
}

func (r CreateDocumentRequest) ToInput() usecase.CreateDocumentInput {
	return usecase.CreateDocumentInput{
		ID:     r.ID,
		Type:   entities.DocumentType(r.Type),
		Header: r.Header.toHeader(),
		Photos: r.Photos,
		Items:  toLineItemInputs(r.Items),
	}
}

func (r UpdateDocumentRequest) ToInput(id string) usecase.UpdateDocumentInput {
	in := usecase.UpdateDocumentInput{
		ID:     id,
		Header: r.Header.toHeader(),
		Photos: r.Photos,
		Items:  toLineItemInputs(r.Items),
	}
	for _, t := range r.Tasks {
		in.Tasks = append(in.Tasks, usecase.TaskInput{ID: t.ID, Text: t.Task})
	}
	return in
}

func (h DocumentHeaderRequest) toHeader() usecase.DocumentHeader {
	return usecase.DocumentHeader{
		Title:            h.Title,
		ClientID:         h.ClientID,
		VehicleID:        h.VehicleID,
		StatusID:         h.StatusID,
		Subtotal:         h.Subtotal,
		Discount:         h.Discount,
		Tax:              h.Tax,
		Deposit:          h.Deposit,
		DepositNotes:     h.DepositNotes,
		DepositMethod:    h.DepositMethod,
		GrandTotal:       h.GrandTotal,
		Due:              h.Due,
		InternalNotes:    h.InternalNotes,
		Terms:            h.Terms,
		Policy:           h.Policy,
		CustomerNotes:    h.CustomerNotes,
		CustomerComments: h.CustomerComments,
	}
}

func toLineItemInputs(items []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, item := range items {
		in := usecase.LineItemInput{
			ServiceID: item.ServiceID,
			LaborID:   item.LaborID,
			TagIDs:    item.TagIDs,
		}
		for _, m := range item.Materials {
			in.Materials = append(in.Materials, usecase.MaterialInput{
				Name:       m.Name,
				VendorID:   m.VendorID,
				CategoryID: m.CategoryID,
				ProductID:  m.ProductID,
				Notes:      m.Notes,
				Quantity:   m.Quantity,
				Cost:       m.Cost,
				Sell:       m.Sell,
				Discount:   m.Discount,
			})
		}
		out = append(out, in)
	}
	return out
}
