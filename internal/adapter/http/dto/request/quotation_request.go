package request

type CreateQuotationRequest struct {
	EstimateID string `json:"estimate_id" binding:"required"`
}
