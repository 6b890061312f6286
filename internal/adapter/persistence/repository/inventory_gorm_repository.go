package repository

import (
	"context"
	"errors"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// InventoryGormRepository persists catalog products and the stock ledger.
type InventoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IInventoryRepository = (*InventoryGormRepository)(nil)

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

func (r *InventoryGormRepository) CreateProduct(ctx context.Context, p entities.InventoryProduct) (entities.InventoryProduct, error) {
	if err := dbFromContext(ctx, r.db).Create(&p).Error; err != nil {
		return entities.InventoryProduct{}, err
	}
	return p, nil
}

func (r *InventoryGormRepository) GetProduct(ctx context.Context, companyID, id uint) (entities.InventoryProduct, error) {
	var p entities.InventoryProduct
	err := dbFromContext(ctx, r.db).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.InventoryProduct{}, nil
	}
	if err != nil {
		return entities.InventoryProduct{}, err
	}
	return p, nil
}

func (r *InventoryGormRepository) ListProducts(ctx context.Context, companyID uint) ([]entities.InventoryProduct, error) {
	var products []entities.InventoryProduct
	err := dbFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *InventoryGormRepository) ListDocumentMaterials(ctx context.Context, documentID string) ([]entities.Material, error) {
	var materials []entities.Material
	err := dbFromContext(ctx, r.db).
		Where("document_id = ? AND product_id IS NOT NULL", documentID).
		Preload("Vendor").
		Order("id").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *InventoryGormRepository) CreateHistory(ctx context.Context, h entities.InventoryProductHistory) (entities.InventoryProductHistory, error) {
	if err := dbFromContext(ctx, r.db).Create(&h).Error; err != nil {
		return entities.InventoryProductHistory{}, err
	}
	return h, nil
}

func (r *InventoryGormRepository) ListHistory(ctx context.Context, companyID, productID uint) ([]entities.InventoryProductHistory, error) {
	var history []entities.InventoryProductHistory
	err := dbFromContext(ctx, r.db).
		Joins("JOIN inventory_products ON inventory_products.id = inventory_product_histories.product_id").
		Where("inventory_product_histories.product_id = ? AND inventory_products.company_id = ?", productID, companyID).
		Order("inventory_product_histories.date DESC, inventory_product_histories.id DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *InventoryGormRepository) DecrementQuantity(ctx context.Context, productID uint, by float64) error {
	return dbFromContext(ctx, r.db).
		Model(&entities.InventoryProduct{}).
		Where("id = ?", productID).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", by)).Error
}
