package interfaces

import "shop_manager/internal/domain/entities"

// IListingCache caches the rendered estimate listing per company. Mutators
// invalidate the company's entry after every successful write so the next
// listing request re-reads the database.
type IListingCache interface {
	Get(companyID uint) ([]entities.Document, bool)
	Set(companyID uint, docs []entities.Document)
	Invalidate(companyID uint)
}
