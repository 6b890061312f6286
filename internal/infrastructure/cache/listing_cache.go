package cache

import (
	"time"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSize = 256
	defaultTTL  = 5 * time.Minute
)

// ListingCache holds the estimate listing per company. Entries expire on
// their own, but every document mutation invalidates the company's entry
// eagerly so the listing never shows a stale set after a write.
type ListingCache struct {
	lru *expirable.LRU[uint, []entities.Document]
}

var _ interfaces.IListingCache = (*ListingCache)(nil)

func NewListingCache() *ListingCache {
	return &ListingCache{
		lru: expirable.NewLRU[uint, []entities.Document](defaultSize, nil, defaultTTL),
	}
}

func (c *ListingCache) Get(companyID uint) ([]entities.Document, bool) {
	return c.lru.Get(companyID)
}

func (c *ListingCache) Set(companyID uint, docs []entities.Document) {
	c.lru.Add(companyID, docs)
}

func (c *ListingCache) Invalidate(companyID uint) {
	c.lru.Remove(companyID)
}
