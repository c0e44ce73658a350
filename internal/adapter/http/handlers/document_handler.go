package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	response "adspace_ops/internal/adapter/http/dto/response"
	"adspace_ops/internal/usecase"
	"adspace_ops/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles PDF generation endpoints. Each endpoint builds the
// document model for its source entity, renders it and answers with the
// uploaded file's URL.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) GenerateEstimateDocument(c *gin.Context) {
	h.generate(c, h.usecase.GenerateEstimateDocument)
}

func (h *DocumentHandler) GenerateQuotationDocument(c *gin.Context) {
	h.generate(c, h.usecase.GenerateQuotationDocument)
}

func (h *DocumentHandler) GenerateJobOrderDocument(c *gin.Context) {
	h.generate(c, h.usecase.GenerateJobOrderDocument)
}

func (h *DocumentHandler) GenerateAssignmentDocument(c *gin.Context) {
	h.generate(c, h.usecase.GenerateAssignmentDocument)
}

func (h *DocumentHandler) generate(
	c *gin.Context,
	generator func(ctx context.Context, id string) (string, error),
) {
	id := c.Param("id")
	url, err := generator(c.Request.Context(), id)
	if err != nil {
		log.Printf("[document][handler] generate failed id=%s err=%v", id, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.DocumentResponse{URL: url})
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidJobOrderID), errors.Is(err, usecase.ErrInvalidAssignmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRendererNotConfigured), errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainErrorSimple("DOCUMENTS_UNAVAILABLE", "Document generation not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
