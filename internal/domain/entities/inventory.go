package entities

import (
	"time"

	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeProduct ProductType = "Product"
	ProductTypeSupply  ProductType = "Supply"
)

// ProductHistoryType is the direction of a stock movement.
type ProductHistoryType string

const (
	ProductHistorySale     ProductHistoryType = "Sale"
	ProductHistoryPurchase ProductHistoryType = "Purchase"
)

// InventoryProduct is a stock-keeping unit. Quantity is the mutable on-hand
// level; it is decremented as a side effect of document conversion and never
// created or destroyed by that flow.
type InventoryProduct struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CompanyID   uint        `gorm:"index;not null" json:"company_id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Price       *float64    `json:"price"`
	CategoryID  *uint       `json:"category_id"`
	VendorID    *uint       `json:"vendor_id"`
	Quantity    float64     `gorm:"default:0" json:"quantity"`
	Unit        string      `gorm:"size:50" json:"unit"`
	Lot         string      `gorm:"size:100" json:"lot"`
	Type        ProductType `gorm:"size:20;default:'Product'" json:"type"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (InventoryProduct) TableName() string {
	return "inventory_products"
}

// InventoryProductHistory is an append-only audit row for a stock movement.
//
// Price and VendorID are a representative sample taken from the first
// material row that referenced the product on the originating document, even
// when several materials at different prices were aggregated into one entry.
type InventoryProductHistory struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	ProductID  uint               `gorm:"index;not null" json:"product_id"`
	Date       time.Time          `gorm:"not null" json:"date"`
	Quantity   float64            `gorm:"not null" json:"quantity"`
	Price      *float64           `json:"price"`
	VendorID   *uint              `json:"vendor_id"`
	Type       ProductHistoryType `gorm:"size:20;not null" json:"type"`
	DocumentID *string            `gorm:"index;size:36" json:"document_id"`

	Product *InventoryProduct `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Vendor  *Vendor           `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (InventoryProductHistory) TableName() string {
	return "inventory_product_histories"
}
