package routes

import (
	"adspace_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates  = "/estimates"
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
)

func addSalesRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.CostEstimateHandler,
	quotationHandler *handlers.QuotationHandler,
	documentHandler *handlers.DocumentHandler,
	paymentHandler *handlers.BillingPaymentHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/field", estimateHandler.EditEstimateField)
		estimates.PATCH("/:id/send", estimateHandler.SendEstimate)
		estimates.PATCH("/:id/accept", estimateHandler.AcceptEstimate)
		estimates.PATCH("/:id/decline", estimateHandler.DeclineEstimate)
		estimates.PATCH("/:id/revise", estimateHandler.ReviseEstimate)
		estimates.POST("/:id/document", documentHandler.GenerateEstimateDocument)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/send", quotationHandler.SendQuotation)
		quotations.PATCH("/:id/accept", quotationHandler.AcceptQuotation)
		quotations.PATCH("/:id/decline", quotationHandler.DeclineQuotation)
		quotations.PATCH("/:id/expire", quotationHandler.ExpireQuotation)
		quotations.POST("/:id/document", documentHandler.GenerateQuotationDocument)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quotation_id", paymentHandler.CreatePaymentByQuotationID)
		payments.GET("/:quotation_id", paymentHandler.GetPaymentByQuotationID)
	}
}
