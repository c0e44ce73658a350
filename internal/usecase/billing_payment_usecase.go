package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"
)

var (
	ErrBillingPaymentNotFound     = errors.New("billing payment not found")
	ErrInvalidPaymentQuotationID  = errors.New("invalid quotation_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrQuotationNotPayable        = errors.New("quotation not accepted")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBillingPaymentUseCase settles accepted quotations.
//
// Requested behavior:
//   - Create an item in the payment table and approve it as paid.
//   - The source of truth for the amount is the stored quotation total.

type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo          interfaces.IBillingPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	gateway       interfaces.IPaymentGateway
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, quotationRepo interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, quotationRepo: quotationRepo, gateway: gateway}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_quotation_id=%q payload_len=%d", quotationID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentQuotationID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload quotation_id=%s", quotationID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.BillingPayment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quotation quotation_id=%s err=%v", quotationID, err)
		return entities.BillingPayment{}, err
	}
	if q.ID == "" {
		return entities.BillingPayment{}, ErrQuotationNotFound
	}
	if !mockMode && q.Status != entities.QuotationStatusAccepted {
		log.Printf("[payment][usecase] quotation not payable quotation_id=%s status=%s", quotationID, q.Status)
		return entities.BillingPayment{}, ErrQuotationNotPayable
	}
	log.Printf("[payment][usecase] quotation loaded quotation_id=%s status=%s total=%.2f", quotationID, q.Status, q.TotalAmount)

	// Link the payment back to the quotation; Mercado Pago uses
	// external_reference to reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quotationID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Quotation %s", quotationID)
		}
		// The source of truth for the amount is the quotation in DB.
		reqMap["transaction_amount"] = q.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external gateway quotation_id=%s", quotationID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{
			"id":                 providerPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": quotationID,
			"transaction_amount": q.TotalAmount,
			"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.BillingPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed quotation_id=%s err=%v", quotationID, err)
			if isGatewayUnauthorized(err) {
				return entities.BillingPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.BillingPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.BillingPayment{}, err
		}
	}
	log.Printf("[payment][usecase] gateway success quotation_id=%s provider_payment_id=%s provider_status=%s", quotationID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quotation_id=%s err=%v", quotationID, err)
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		QuotationID:  quotationID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quotation_id=%s payment_id=%s err=%v", quotationID, p.ID, err)
		return entities.BillingPayment{}, err
	}
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.BillingPayment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidPaymentQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":401") || strings.Contains(msg, "unauthorized")
}
