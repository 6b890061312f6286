package interfaces

import (
	"context"
	"shop_manager/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for payments received against
// documents. ListByCompany preloads the document with client and vehicle so
// the payments screen can denormalize without extra round trips.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByCompany(ctx context.Context, companyID uint) ([]entities.Payment, error)
}
