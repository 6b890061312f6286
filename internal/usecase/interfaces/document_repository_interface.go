package interfaces

import (
	"context"
	"shop_manager/internal/domain/entities"
)

// IDocumentRepository abstracts relational persistence for documents and
// their child collections.
//
// Child collections follow full-replace semantics: ReplacePhotos and
// ReplaceLineItems delete every existing row for the document before
// inserting the incoming set. Reads return a zero-value entity and a nil
// error when nothing matches; use cases translate that into not-found.
type IDocumentRepository interface {
	Create(ctx context.Context, doc entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, companyID uint, id string) (entities.Document, error)
	ListByCompany(ctx context.Context, companyID uint) ([]entities.Document, error)
	UpdateHeader(ctx context.Context, doc entities.Document) error
	SetType(ctx context.Context, id string, docType entities.DocumentType) error
	ListPhotos(ctx context.Context, id string) ([]entities.DocumentPhoto, error)
	ReplacePhotos(ctx context.Context, id string, photos []string) error
	ReplaceLineItems(ctx context.Context, id string, companyID uint, items []entities.LineItem) error
}
