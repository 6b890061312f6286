package usecase

import (
	"context"
	"errors"
	"testing"

	"shop_manager/internal/domain/entities"
	mock_interfaces "shop_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_CreateProduct(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), 1, CreateProductInput{Name: "  "})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("creates product with opening purchase entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		tx := mock_interfaces.NewMockITransactionManager(ctrl)
		uc := NewInventoryUseCase(repo, tx)

		passthroughTx(tx)
		repo.EXPECT().CreateProduct(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryProduct{})).DoAndReturn(
			func(_ context.Context, p entities.InventoryProduct) (entities.InventoryProduct, error) {
				if p.CompanyID != 1 || p.Name != "Brake pads" || p.Quantity != 20 {
					t.Fatalf("unexpected product: %+v", p)
				}
				if p.Type != entities.ProductTypeProduct {
					t.Fatalf("expected Product default type, got %s", p.Type)
				}
				p.ID = 100
				return p, nil
			},
		)
		repo.EXPECT().CreateHistory(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryProductHistory{})).DoAndReturn(
			func(_ context.Context, h entities.InventoryProductHistory) (entities.InventoryProductHistory, error) {
				if h.ProductID != 100 || h.Quantity != 20 || h.Type != entities.ProductHistoryPurchase {
					t.Fatalf("unexpected opening entry: %+v", h)
				}
				if h.Price == nil || *h.Price != 10 {
					t.Fatalf("expected opening price, got %+v", h)
				}
				if h.Date.IsZero() {
					t.Fatalf("expected entry date")
				}
				return h, nil
			},
		)

		p, err := uc.CreateProduct(context.Background(), 1, CreateProductInput{
			Name:     " Brake pads ",
			Price:    floatPtr(10),
			Quantity: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != 100 {
			t.Fatalf("unexpected product: %+v", p)
		}
	})

	t.Run("zero stock opens the ledger with quantity 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		tx := mock_interfaces.NewMockITransactionManager(ctrl)
		uc := NewInventoryUseCase(repo, tx)

		passthroughTx(tx)
		repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InventoryProduct) (entities.InventoryProduct, error) {
				p.ID = 101
				return p, nil
			},
		)
		repo.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.InventoryProductHistory) (entities.InventoryProductHistory, error) {
				if h.Quantity != 1 {
					t.Fatalf("expected opening quantity 1, got %v", h.Quantity)
				}
				return h, nil
			},
		)

		if _, err := uc.CreateProduct(context.Background(), 1, CreateProductInput{Name: "Oil filter"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ledger failure rolls back the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		tx := mock_interfaces.NewMockITransactionManager(ctrl)
		uc := NewInventoryUseCase(repo, tx)

		passthroughTx(tx)
		repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(entities.InventoryProduct{ID: 1}, nil)
		repo.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).Return(entities.InventoryProductHistory{}, errors.New("db"))

		_, err := uc.CreateProduct(context.Background(), 1, CreateProductInput{Name: "Coolant"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestInventoryUseCase_GetProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetProduct(gomock.Any(), uint(1), uint(9)).Return(entities.InventoryProduct{}, nil)

		_, err := uc.GetProduct(context.Background(), 1, 9)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetProduct(gomock.Any(), uint(1), uint(9)).Return(entities.InventoryProduct{ID: 9, Name: "Pads"}, nil)

		p, err := uc.GetProduct(context.Background(), 1, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Pads" {
			t.Fatalf("unexpected product: %+v", p)
		}
	})
}

func TestInventoryUseCase_ListHistory(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetProduct(gomock.Any(), uint(1), uint(9)).Return(entities.InventoryProduct{}, nil)

		_, err := uc.ListHistory(context.Background(), 1, 9)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("returns ledger entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetProduct(gomock.Any(), uint(1), uint(9)).Return(entities.InventoryProduct{ID: 9}, nil)
		repo.EXPECT().ListHistory(gomock.Any(), uint(1), uint(9)).Return([]entities.InventoryProductHistory{
			{ProductID: 9, Type: entities.ProductHistoryPurchase},
			{ProductID: 9, Type: entities.ProductHistorySale},
		}, nil)

		hist, err := uc.ListHistory(context.Background(), 1, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hist) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(hist))
		}
	})
}
