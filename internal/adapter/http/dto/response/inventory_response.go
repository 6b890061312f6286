package response

import (
	"time"

	"shop_manager/internal/domain/entities"
)

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	CategoryID  *uint     `json:"category_id"`
	VendorID    *uint     `json:"vendor_id"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Lot         string    `json:"lot"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProduct(p entities.InventoryProduct) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		VendorID:    p.VendorID,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		Lot:         p.Lot,
		Type:        string(p.Type),
		CreatedAt:   p.CreatedAt,
	}
}

func FromProducts(products []entities.InventoryProduct) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type ProductHistoryResponse struct {
	ID         uint      `json:"id"`
	ProductID  uint      `json:"product_id"`
	Date       time.Time `json:"date"`
	Quantity   float64   `json:"quantity"`
	Price      *float64  `json:"price"`
	VendorID   *uint     `json:"vendor_id"`
	Type       string    `json:"type"`
	DocumentID *string   `json:"document_id"`
}

func FromProductHistory(h entities.InventoryProductHistory) ProductHistoryResponse {
	return ProductHistoryResponse{
		ID:         h.ID,
		ProductID:  h.ProductID,
		Date:       h.Date,
		Quantity:   h.Quantity,
		Price:      h.Price,
		VendorID:   h.VendorID,
		Type:       string(h.Type),
		DocumentID: h.DocumentID,
	}
}

func FromProductHistories(history []entities.InventoryProductHistory) []ProductHistoryResponse {
	out := make([]ProductHistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, FromProductHistory(h))
	}
	return out
}
