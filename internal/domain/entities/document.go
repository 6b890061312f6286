package entities

import (
	"time"

	"gorm.io/gorm"
)

// DocumentType distinguishes an estimate from an invoice. Both live in the
// same table; conversion flips this flag and commits the inventory impact.
type DocumentType string

const (
	DocumentTypeEstimate DocumentType = "Estimate"
	DocumentTypeInvoice  DocumentType = "Invoice"
)

// Toggle returns the opposite document type.
func (t DocumentType) Toggle() DocumentType {
	if t == DocumentTypeEstimate {
		return DocumentTypeInvoice
	}
	return DocumentTypeEstimate
}

// Document is a billable work order (estimate or invoice).
//
// The ID is an opaque string chosen by the caller at create time (the UI
// generates short human-readable codes). All monetary fields are sent in
// full by the client on every update; there is no partial-field patch.
type Document struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	CompanyID uint         `gorm:"index;not null" json:"company_id"`
	Title     string       `gorm:"size:255" json:"title"`
	Type      DocumentType `gorm:"size:20;default:'Estimate'" json:"type"`

	ClientID  *uint `json:"client_id"`
	VehicleID *uint `json:"vehicle_id"`
	StatusID  *uint `json:"status_id"`

	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Tax           float64 `json:"tax"`
	Deposit       float64 `json:"deposit"`
	DepositNotes  string  `gorm:"type:text" json:"deposit_notes"`
	DepositMethod string  `gorm:"size:50" json:"deposit_method"`
	GrandTotal    float64 `json:"grand_total"`
	Due           float64 `json:"due"`

	InternalNotes    string `gorm:"type:text" json:"internal_notes"`
	Terms            string `gorm:"type:text" json:"terms"`
	Policy           string `gorm:"type:text" json:"policy"`
	CustomerNotes    string `gorm:"type:text" json:"customer_notes"`
	CustomerComments string `gorm:"type:text" json:"customer_comments"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Client  *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Vehicle *Vehicle        `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Items   []LineItem      `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
	Photos  []DocumentPhoto `gorm:"foreignKey:DocumentID" json:"photos,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

// LineItem is one row of work on a document: an optional service, an
// optional labor entry, consumed materials and workflow tags.
//
// Line items are never patched in place. Every document update deletes the
// whole set and recreates it from the incoming payload.
type LineItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DocumentID string `gorm:"index;size:36;not null" json:"document_id"`
	ServiceID  *uint  `json:"service_id"`
	LaborID    *uint  `json:"labor_id"`

	Service   *Service   `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Labor     *Labor     `gorm:"foreignKey:LaborID" json:"labor,omitempty"`
	Materials []Material `gorm:"foreignKey:LineItemID" json:"materials,omitempty"`
	Tags      []ItemTag  `gorm:"foreignKey:ItemID" json:"tags,omitempty"`
}

func (LineItem) TableName() string {
	return "line_items"
}

// Material is a consumed part on a line item. ProductID links it to the
// inventory catalog; conversion aggregates material quantities per product
// to drive the stock decrement and the ledger entry.
type Material struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	LineItemID uint   `gorm:"index;not null" json:"line_item_id"`
	DocumentID string `gorm:"index;size:36;not null" json:"document_id"`
	CompanyID  uint   `gorm:"index;not null" json:"company_id"`

	Name       string   `gorm:"size:255" json:"name"`
	VendorID   *uint    `json:"vendor_id"`
	CategoryID *uint    `json:"category_id"`
	ProductID  *uint    `gorm:"index" json:"product_id"`
	Notes      string   `gorm:"type:text" json:"notes"`
	Quantity   *float64 `json:"quantity"`
	Cost       *float64 `json:"cost"`
	Sell       *float64 `json:"sell"`
	Discount   *float64 `json:"discount"`

	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}

// ItemTag joins a line item to a workflow tag ("Order Material",
// "Get Deposit", ...).
type ItemTag struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ItemID uint `gorm:"index;not null" json:"item_id"`
	TagID  uint `gorm:"index;not null" json:"tag_id"`

	Tag *Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

func (ItemTag) TableName() string {
	return "item_tags"
}

// DocumentPhoto is an attachment record; Photo is the file name under the
// upload directory, not a full path.
type DocumentPhoto struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DocumentID string `gorm:"index;size:36;not null" json:"document_id"`
	Photo      string `gorm:"size:500;not null" json:"photo"`
}

func (DocumentPhoto) TableName() string {
	return "document_photos"
}
