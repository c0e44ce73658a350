package handlers

import (
	"context"
	"errors"
	"net/http"

	request "adspace_ops/internal/adapter/http/dto/request"
	response "adspace_ops/internal/adapter/http/dto/response"
	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/domain/pricing"
	"adspace_ops/internal/usecase"
	"adspace_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// CostEstimateHandler handles HTTP requests for cost estimates: creation,
// single-field edits and the draft/sent/accepted lifecycle.

type CostEstimateHandler struct {
	usecase usecase.ICostEstimateUseCase
}

func NewCostEstimateHandler(uc usecase.ICostEstimateUseCase) *CostEstimateHandler {
	return &CostEstimateHandler{usecase: uc}
}

func (h *CostEstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCostEstimate(estimate))
}

func (h *CostEstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

// ListEstimates filters by the status query parameter, defaulting to draft.
func (h *CostEstimateHandler) ListEstimates(c *gin.Context) {
	status := c.DefaultQuery("status", string(entities.CostEstimateStatusDraft))

	estimates, err := h.usecase.ListByStatus(c.Request.Context(), entities.CostEstimateStatus(status))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimates(estimates))
}

// EditEstimateField applies a single-field edit to one site group. Line item
// totals and the estimate total are recomputed by the pricing engine.
func (h *CostEstimateHandler) EditEstimateField(c *gin.Context) {
	var payload request.EditEstimateFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.EditField(c.Request.Context(), c.Param("id"), payload.ToFieldEdit())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

func (h *CostEstimateHandler) SendEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Send)
}

func (h *CostEstimateHandler) AcceptEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Accept)
}

func (h *CostEstimateHandler) DeclineEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Decline)
}

func (h *CostEstimateHandler) ReviseEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Revise)
}

func (h *CostEstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.CostEstimate, error),
) {
	estimate, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateInput),
		errors.Is(err, pricing.ErrUnsupportedField), errors.Is(err, pricing.ErrInvalidFieldValue),
		errors.Is(err, pricing.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillboardNotFound):
		return pkg.NewDomainErrorSimple("BILLBOARD_NOT_FOUND", "Billboard not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotEditable):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_EDITABLE", "Estimate not editable in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
