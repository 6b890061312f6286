package response

import (
	"time"

	"shop_manager/internal/domain/entities"
)

type MaterialResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	VendorID  *uint    `json:"vendor_id"`
	ProductID *uint    `json:"product_id"`
	Quantity  *float64 `json:"quantity"`
	Cost      *float64 `json:"cost"`
	Sell      *float64 `json:"sell"`
	Discount  *float64 `json:"discount"`
}

type LineItemResponse struct {
	ID        uint               `json:"id"`
	ServiceID *uint              `json:"service_id"`
	LaborID   *uint              `json:"labor_id"`
	Materials []MaterialResponse `json:"materials"`
	TagIDs    []uint             `json:"tag_ids"`
}

type DocumentResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
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

	Photos []string           `json:"photos"`
	Items  []LineItemResponse `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhotoResponse carries the generated file name of an uploaded photo.
type PhotoResponse struct {
	Photo string `json:"photo"`
}

func FromDocument(d entities.Document) DocumentResponse {
	res := DocumentResponse{
		ID:               d.ID,
		Title:            d.Title,
		Type:             string(d.Type),
		ClientID:         d.ClientID,
		VehicleID:        d.VehicleID,
		StatusID:         d.StatusID,
		Subtotal:         d.Subtotal,
		Discount:         d.Discount,
		Tax:              d.Tax,
		Deposit:          d.Deposit,
		DepositNotes:     d.DepositNotes,
		DepositMethod:    d.DepositMethod,
		GrandTotal:       d.GrandTotal,
		Due:              d.Due,
		InternalNotes:    d.InternalNotes,
		Terms:            d.Terms,
		Policy:           d.Policy,
		CustomerNotes:    d.CustomerNotes,
		CustomerComments: d.CustomerComments,
		Photos:           []string{},
		Items:            []LineItemResponse{},
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	for _, p := range d.Photos {
		res.Photos = append(res.Photos, p.Photo)
	}
	for _, item := range d.Items {
		res.Items = append(res.Items, fromLineItem(item))
	}
	return res
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

func fromLineItem(item entities.LineItem) LineItemResponse {
	res := LineItemResponse{
		ID:        item.ID,
		ServiceID: item.ServiceID,
		LaborID:   item.LaborID,
		Materials: []MaterialResponse{},
		TagIDs:    []uint{},
	}
	for _, m := range item.Materials {
		res.Materials = append(res.Materials, MaterialResponse{
			ID:        m.ID,
			Name:      m.Name,
			VendorID:  m.VendorID,
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			Cost:      m.Cost,
			Sell:      m.Sell,
			Discount:  m.Discount,
		})
	}
	for _, t := range item.Tags {
		res.TagIDs = append(res.TagIDs, t.TagID)
	}
	return res
}
