package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase/interfaces"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductName = errors.New("invalid product name")
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       *float64
	CategoryID  *uint
	VendorID    *uint
	Quantity    float64
	Unit        string
	Lot         string
	Type        entities.ProductType
}

// IInventoryUseCase exposes catalog product operations: create (with the
// opening Purchase ledger entry), listing and per-product ledger history.
type IInventoryUseCase interface {
	CreateProduct(ctx context.Context, companyID uint, in CreateProductInput) (entities.InventoryProduct, error)
	GetProduct(ctx context.Context, companyID, id uint) (entities.InventoryProduct, error)
	ListProducts(ctx context.Context, companyID uint) ([]entities.InventoryProduct, error)
	ListHistory(ctx context.Context, companyID, productID uint) ([]entities.InventoryProductHistory, error)
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository
	tx   interfaces.ITransactionManager
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, tx interfaces.ITransactionManager) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, tx: tx}
}

func (u *InventoryUseCase) CreateProduct(ctx context.Context, companyID uint, in CreateProductInput) (entities.InventoryProduct, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.InventoryProduct{}, ErrInvalidProductName
	}
	if in.Type == "" {
		in.Type = entities.ProductTypeProduct
	}

	var created entities.InventoryProduct
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repo.CreateProduct(ctx, entities.InventoryProduct{
			CompanyID:   companyID,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			CategoryID:  in.CategoryID,
			VendorID:    in.VendorID,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			Lot:         in.Lot,
			Type:        in.Type,
		})
		if err != nil {
			return err
		}

		// The opening ledger entry records at least 1 even when the product
		// is created without stock.
		openingQty := created.Quantity
		if openingQty == 0 {
			openingQty = 1
		}
		_, err = u.repo.CreateHistory(ctx, entities.InventoryProductHistory{
			ProductID: created.ID,
			Date:      time.Now().UTC(),
			Quantity:  openingQty,
			Price:     created.Price,
			VendorID:  created.VendorID,
			Type:      entities.ProductHistoryPurchase,
		})
		return err
	})
	if err != nil {
		return entities.InventoryProduct{}, err
	}
	return created, nil
}

func (u *InventoryUseCase) GetProduct(ctx context.Context, companyID, id uint) (entities.InventoryProduct, error) {
	p, err := u.repo.GetProduct(ctx, companyID, id)
	if err != nil {
		return entities.InventoryProduct{}, err
	}
	if p.ID == 0 {
		return entities.InventoryProduct{}, ErrProductNotFound
	}
	return p, nil
}

func (u *InventoryUseCase) ListProducts(ctx context.Context, companyID uint) ([]entities.InventoryProduct, error) {
	return u.repo.ListProducts(ctx, companyID)
}

func (u *InventoryUseCase) ListHistory(ctx context.Context, companyID, productID uint) ([]entities.InventoryProductHistory, error) {
	p, err := u.repo.GetProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, ErrProductNotFound
	}
	return u.repo.ListHistory(ctx, companyID, productID)
}
