package handlers

import (
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
	errInvalidBillboardPayload = pkg.NewDomainErrorSimple("INVALID_BILLBOARD_INPUT", "Invalid billboard payload", http.StatusBadRequest)
)

// BillboardHandler handles HTTP requests for billboard inventory.

type BillboardHandler struct {
	usecase usecase.IBillboardUseCase
}

func NewBillboardHandler(uc usecase.IBillboardUseCase) *BillboardHandler {
	return &BillboardHandler{usecase: uc}
}

// CreateBillboard registers a new site in the inventory.
func (h *BillboardHandler) CreateBillboard(c *gin.Context) {
	var payload request.CreateBillboardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillboardPayload.HTTPStatus, errInvalidBillboardPayload.ToHTTPError())
		return
	}

	specs := entities.LineItemSpecs{Height: payload.Height, Width: payload.Width}
	billboard, err := h.usecase.Create(c.Request.Context(), payload.SiteName, payload.Location, specs, payload.MonthlyRate)
	if err != nil {
		appErr := mapBillboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBillboard(billboard))
}

func (h *BillboardHandler) GetBillboard(c *gin.Context) {
	billboard, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBillboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillboard(billboard))
}

func (h *BillboardHandler) ListBillboards(c *gin.Context) {
	billboards, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBillboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillboards(billboards))
}

func (h *BillboardHandler) UpdateBillboardStatus(c *gin.Context) {
	var payload request.UpdateBillboardStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillboardPayload.HTTPStatus, errInvalidBillboardPayload.ToHTTPError())
		return
	}

	billboard, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.BillboardStatus(payload.Status))
	if err != nil {
		appErr := mapBillboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillboard(billboard))
}

func (h *BillboardHandler) UpdateBillboardRate(c *gin.Context) {
	var payload request.UpdateBillboardRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillboardPayload.HTTPStatus, errInvalidBillboardPayload.ToHTTPError())
		return
	}

	billboard, err := h.usecase.UpdateRate(c.Request.Context(), c.Param("id"), payload.MonthlyRate)
	if err != nil {
		appErr := mapBillboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillboard(billboard))
}

func mapBillboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillboardID), errors.Is(err, usecase.ErrInvalidSiteName),
		errors.Is(err, usecase.ErrInvalidMonthlyRate), errors.Is(err, usecase.ErrInvalidBillboardStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillboardNotFound):
		return pkg.NewDomainErrorSimple("BILLBOARD_NOT_FOUND", "Billboard not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
