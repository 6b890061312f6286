package response

import (
	"fmt"
	"strings"
	"time"

	"shop_manager/internal/domain/entities"
)

// PaymentResponse is the denormalized row the payments screen renders:
// client name and vehicle label come from the document's preloaded
// associations.
type PaymentResponse struct {
	ID         uint      `json:"id"`
	DocumentID string    `json:"document_id"`
	ClientName string    `json:"client_name,omitempty"`
	Vehicle    string    `json:"vehicle,omitempty"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:         p.ID,
		DocumentID: p.DocumentID,
		Date:       p.Date,
		Amount:     p.Amount,
		Method:     string(p.Method),
		Status:     string(p.Status),
	}
	if p.Document != nil {
		if c := p.Document.Client; c != nil {
			res.ClientName = strings.TrimSpace(c.FirstName + " " + c.LastName)
		}
		if v := p.Document.Vehicle; v != nil {
			res.Vehicle = strings.TrimSpace(fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model))
		}
	}
	return res
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
