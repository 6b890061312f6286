package entities

import (
	"encoding/json"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodCard  PaymentMethod = "Card"
	PaymentMethodCheck PaymentMethod = "Check"
	PaymentMethodOther PaymentMethod = "Other"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusApproved PaymentStatus = "Approved"
	PaymentStatusDenied   PaymentStatus = "Denied"
)

// Payment is money received against a document. Card payments go through the
// external gateway first; GatewayPayloadRaw keeps the original provider
// response (JSON) for traceability/audit.
type Payment struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	CompanyID  uint          `gorm:"index;not null" json:"company_id"`
	DocumentID string        `gorm:"index;size:36;not null" json:"document_id"`
	Date       time.Time     `gorm:"not null" json:"date"`
	Amount     float64       `gorm:"not null" json:"amount"`
	Method     PaymentMethod `gorm:"size:20;not null" json:"method"`
	Status     PaymentStatus `gorm:"size:20;default:'Approved'" json:"status"`
	Notes      string        `gorm:"type:text" json:"notes"`

	GatewayPaymentID  string          `gorm:"size:100" json:"gateway_payment_id,omitempty"`
	GatewayStatus     string          `gorm:"size:50" json:"gateway_status,omitempty"`
	GatewayPayloadRaw json.RawMessage `gorm:"type:text" json:"gateway_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Document *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
