package request

import (
	"encoding/json"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase"
)

// RecordPaymentRequest is the payload for recording a payment against a
// document. `gateway_payload` is passed through raw (Card only) to support
// varying provider schemas.
type RecordPaymentRequest struct {
	Amount         float64         `json:"amount" binding:"required"`
	Method         string          `json:"method" binding:"required"`
	Notes          string          `json:"notes"`
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}

func (r RecordPaymentRequest) ToInput(documentID string) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		DocumentID:     documentID,
		Amount:         r.Amount,
		Method:         entities.PaymentMethod(r.Method),
		Notes:          r.Notes,
		GatewayPayload: r.GatewayPayload,
	}
}
