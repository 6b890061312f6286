package repository

import (
	"context"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := dbFromContext(ctx, r.db).Create(&p).Error; err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) ListByCompany(ctx context.Context, companyID uint) ([]entities.Payment, error) {
	var payments []entities.Payment
	err := dbFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		Preload("Document").
		Preload("Document.Client").
		Preload("Document.Vehicle").
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
