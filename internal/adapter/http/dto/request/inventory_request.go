package request

import (
	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase"
)

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *uint    `json:"category_id"`
	VendorID    *uint    `json:"vendor_id"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	Lot         string   `json:"lot"`
	Type        string   `json:"type"`
}

func (r CreateProductRequest) ToInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		VendorID:    r.VendorID,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Lot:         r.Lot,
		Type:        entities.ProductType(r.Type),
	}
}
