package handlers

import (
	"context"
	"errors"
	"net/http"

	request "adspace_ops/internal/adapter/http/dto/request"
	response "adspace_ops/internal/adapter/http/dto/response"
	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase"
	"adspace_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobOrderPayload = pkg.NewDomainErrorSimple("INVALID_JOB_ORDER_INPUT", "Invalid job order payload", http.StatusBadRequest)
)

// JobOrderHandler handles HTTP requests for installation work orders.

type JobOrderHandler struct {
	usecase usecase.IJobOrderUseCase
}

func NewJobOrderHandler(uc usecase.IJobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{usecase: uc}
}

func (h *JobOrderHandler) CreateJobOrder(c *gin.Context) {
	var payload request.CreateJobOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolveSchedule()
	if err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	jobOrder, err := h.usecase.CreateFromQuotation(c.Request.Context(), payload.QuotationID, start, end)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobOrder(jobOrder))
}

func (h *JobOrderHandler) GetJobOrder(c *gin.Context) {
	jobOrder, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(jobOrder))
}

func (h *JobOrderHandler) StartJobOrder(c *gin.Context) {
	h.patchJobOrderStatus(c, h.usecase.Start)
}

func (h *JobOrderHandler) CompleteJobOrder(c *gin.Context) {
	h.patchJobOrderStatus(c, h.usecase.Complete)
}

func (h *JobOrderHandler) CancelJobOrder(c *gin.Context) {
	h.patchJobOrderStatus(c, h.usecase.Cancel)
}

func (h *JobOrderHandler) patchJobOrderStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.JobOrder, error),
) {
	jobOrder, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(jobOrder))
}

func mapJobOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobOrderID), errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_ACCEPTED", "Quotation not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
