package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/logger"
	"shop_manager/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidGatewayPayload   = errors.New("invalid payment gateway payload")
	ErrPaymentGatewayNotConfig = errors.New("payment gateway not configured")
)

type RecordPaymentInput struct {
	DocumentID string
	Amount     float64
	Method     entities.PaymentMethod
	Notes      string

	// GatewayPayload is the raw provider request body, used for Card only.
	GatewayPayload json.RawMessage
}

// IPaymentUseCase records money received against documents. Card payments
// are authorized through the external gateway before the row is written.
type IPaymentUseCase interface {
	Record(ctx context.Context, companyID uint, in RecordPaymentInput) (entities.Payment, error)
	List(ctx context.Context, companyID uint) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	documents interfaces.IDocumentRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, documents interfaces.IDocumentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, documents: documents, gateway: gateway}
}

func (u *PaymentUseCase) Record(ctx context.Context, companyID uint, in RecordPaymentInput) (entities.Payment, error) {
	log := logger.WithComponent("payment-usecase")

	in.DocumentID = strings.TrimSpace(in.DocumentID)
	if in.DocumentID == "" {
		return entities.Payment{}, ErrInvalidDocumentID
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	switch in.Method {
	case entities.PaymentMethodCash, entities.PaymentMethodCard, entities.PaymentMethodCheck, entities.PaymentMethodOther:
	default:
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	doc, err := u.documents.GetByID(ctx, companyID, in.DocumentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if doc.ID == "" {
		return entities.Payment{}, ErrDocumentNotFound
	}

	p := entities.Payment{
		CompanyID:  companyID,
		DocumentID: in.DocumentID,
		Date:       time.Now().UTC(),
		Amount:     in.Amount,
		Method:     in.Method,
		Status:     entities.PaymentStatusApproved,
		Notes:      in.Notes,
	}

	if in.Method == entities.PaymentMethodCard {
		if u.gateway == nil {
			return entities.Payment{}, ErrPaymentGatewayNotConfig
		}
		payload := in.GatewayPayload
		if len(payload) == 0 || !json.Valid(payload) {
			return entities.Payment{}, ErrInvalidGatewayPayload
		}

		// The provider reconciles on external_reference; amount comes from
		// the caller, not from whatever the payload claims.
		var reqMap map[string]any
		if err := json.Unmarshal(payload, &reqMap); err == nil {
			if _, ok := reqMap["external_reference"]; !ok {
				reqMap["external_reference"] = in.DocumentID
			}
			if _, ok := reqMap["description"]; !ok {
				reqMap["description"] = fmt.Sprintf("Document %s", in.DocumentID)
			}
			reqMap["transaction_amount"] = in.Amount
			if b, err := json.Marshal(reqMap); err == nil {
				payload = b
			}
		}

		log.Info().Str("document_id", in.DocumentID).Msg("authorizing card payment")
		providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error().Err(err).Str("document_id", in.DocumentID).Msg("payment gateway failed")
			return entities.Payment{}, err
		}
		p.GatewayPaymentID = providerID
		p.GatewayStatus = providerStatus
		p.GatewayPayloadRaw = providerResp
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Info().Str("document_id", in.DocumentID).Uint("payment_id", created.ID).
		Str("method", string(created.Method)).Msg("payment recorded")
	return created, nil
}

func (u *PaymentUseCase) List(ctx context.Context, companyID uint) ([]entities.Payment, error) {
	return u.repo.ListByCompany(ctx, companyID)
}
