package repository

import (
	"context"
	"errors"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// documentHeaderColumns is the exact header field set written on update.
// Selecting the columns explicitly makes GORM write zero values too: the
// header overwrite is total, there is no partial-field patch.
var documentHeaderColumns = []string{
	"title", "client_id", "vehicle_id", "status_id",
	"subtotal", "discount", "tax", "deposit",
	"deposit_notes", "deposit_method", "grand_total", "due",
	"internal_notes", "terms", "policy", "customer_notes", "customer_comments",
}

// DocumentGormRepository persists documents and their child collections.
//
// Reads return a zero-value entity with a nil error when nothing matches;
// the use case layer maps that to its not-found sentinel.
type DocumentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDocumentRepository = (*DocumentGormRepository)(nil)

func NewDocumentGormRepository(db *gorm.DB) *DocumentGormRepository {
	return &DocumentGormRepository{db: db}
}

func (r *DocumentGormRepository) Create(ctx context.Context, doc entities.Document) (entities.Document, error) {
	if err := dbFromContext(ctx, r.db).Create(&doc).Error; err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

func (r *DocumentGormRepository) GetByID(ctx context.Context, companyID uint, id string) (entities.Document, error) {
	var doc entities.Document
	err := dbFromContext(ctx, r.db).
		Where("id = ? AND company_id = ?", id, companyID).
		Preload("Client").
		Preload("Vehicle").
		Preload("Photos").
		Preload("Items.Materials").
		Preload("Items.Tags").
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Document{}, nil
	}
	if err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

func (r *DocumentGormRepository) ListByCompany(ctx context.Context, companyID uint) ([]entities.Document, error) {
	var docs []entities.Document
	err := dbFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		Preload("Client").
		Preload("Vehicle").
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentGormRepository) UpdateHeader(ctx context.Context, doc entities.Document) error {
	return dbFromContext(ctx, r.db).
		Model(&entities.Document{}).
		Where("id = ? AND company_id = ?", doc.ID, doc.CompanyID).
		Select(documentHeaderColumns).
		Updates(&doc).Error
}

func (r *DocumentGormRepository) SetType(ctx context.Context, id string, docType entities.DocumentType) error {
	return dbFromContext(ctx, r.db).
		Model(&entities.Document{}).
		Where("id = ?", id).
		Update("type", docType).Error
}

func (r *DocumentGormRepository) ListPhotos(ctx context.Context, id string) ([]entities.DocumentPhoto, error) {
	var photos []entities.DocumentPhoto
	err := dbFromContext(ctx, r.db).
		Where("document_id = ?", id).
		Order("id").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *DocumentGormRepository) ReplacePhotos(ctx context.Context, id string, photos []string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("document_id = ?", id).Delete(&entities.DocumentPhoto{}).Error; err != nil {
		return err
	}
	if len(photos) == 0 {
		return nil
	}
	rows := make([]entities.DocumentPhoto, 0, len(photos))
	for _, name := range photos {
		rows = append(rows, entities.DocumentPhoto{DocumentID: id, Photo: name})
	}
	return db.Create(&rows).Error
}

func (r *DocumentGormRepository) ReplaceLineItems(ctx context.Context, id string, companyID uint, items []entities.LineItem) error {
	db := dbFromContext(ctx, r.db)

	var staleItemIDs []uint
	if err := db.Model(&entities.LineItem{}).
		Where("document_id = ?", id).
		Pluck("id", &staleItemIDs).Error; err != nil {
		return err
	}
	if len(staleItemIDs) > 0 {
		if err := db.Where("item_id IN ?", staleItemIDs).Delete(&entities.ItemTag{}).Error; err != nil {
			return err
		}
	}
	if err := db.Where("document_id = ?", id).Delete(&entities.Material{}).Error; err != nil {
		return err
	}
	if err := db.Where("document_id = ?", id).Delete(&entities.LineItem{}).Error; err != nil {
		return err
	}

	// GORM fills LineItemID on materials and ItemID on tags when creating
	// the parent rows.
	for i := range items {
		items[i].ID = 0
		items[i].DocumentID = id
		for j := range items[i].Materials {
			items[i].Materials[j].ID = 0
			items[i].Materials[j].DocumentID = id
			items[i].Materials[j].CompanyID = companyID
		}
		for j := range items[i].Tags {
			items[i].Tags[j].ID = 0
		}
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
