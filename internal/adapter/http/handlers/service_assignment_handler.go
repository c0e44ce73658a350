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
	errInvalidAssignmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSIGNMENT_INPUT", "Invalid assignment payload", http.StatusBadRequest)
)

// ServiceAssignmentHandler handles HTTP requests for crew dispatches.

type ServiceAssignmentHandler struct {
	usecase usecase.IServiceAssignmentUseCase
}

func NewServiceAssignmentHandler(uc usecase.IServiceAssignmentUseCase) *ServiceAssignmentHandler {
	return &ServiceAssignmentHandler{usecase: uc}
}

func (h *ServiceAssignmentHandler) CreateAssignment(c *gin.Context) {
	var payload request.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	serviceDate, err := payload.ResolveServiceDate()
	if err != nil {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	assignment, err := h.usecase.Assign(
		c.Request.Context(),
		payload.JobOrderID,
		payload.SiteName,
		payload.CrewName,
		entities.ServiceType(payload.ServiceType),
		serviceDate,
	)
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceAssignment(assignment))
}

func (h *ServiceAssignmentHandler) GetAssignment(c *gin.Context) {
	assignment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceAssignment(assignment))
}

// ListAssignmentsByJobOrder lists the crew dispatches of one job order.
func (h *ServiceAssignmentHandler) ListAssignmentsByJobOrder(c *gin.Context) {
	assignments, err := h.usecase.ListByJobOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceAssignments(assignments))
}

func (h *ServiceAssignmentHandler) CompleteAssignment(c *gin.Context) {
	assignment, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceAssignment(assignment))
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssignmentID), errors.Is(err, usecase.ErrInvalidAssignmentData),
		errors.Is(err, usecase.ErrInvalidJobOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobOrderNotWorkable):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_WORKABLE", "Job order not open or in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
