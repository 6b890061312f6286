package interfaces

import (
	"context"
	"shop_manager/internal/domain/entities"
)

// IInventoryRepository abstracts persistence for catalog products and the
// append-only stock ledger.
type IInventoryRepository interface {
	CreateProduct(ctx context.Context, p entities.InventoryProduct) (entities.InventoryProduct, error)
	GetProduct(ctx context.Context, companyID, id uint) (entities.InventoryProduct, error)
	ListProducts(ctx context.Context, companyID uint) ([]entities.InventoryProduct, error)

	// ListDocumentMaterials returns the document's materials that carry a
	// catalog product link, vendor preloaded, in insertion order.
	ListDocumentMaterials(ctx context.Context, documentID string) ([]entities.Material, error)

	CreateHistory(ctx context.Context, h entities.InventoryProductHistory) (entities.InventoryProductHistory, error)
	ListHistory(ctx context.Context, companyID, productID uint) ([]entities.InventoryProductHistory, error)
	DecrementQuantity(ctx context.Context, productID uint, by float64) error
}
