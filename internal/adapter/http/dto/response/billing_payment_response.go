package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type BillingPaymentResponse struct {
	ID          string    `json:"id"`
	QuotationID string    `json:"quotation_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		ID:           p.ID,
		QuotationID:  p.QuotationID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
