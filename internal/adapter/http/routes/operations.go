package routes

import (
	"adspace_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobOrders   = "/job-orders"
	PathAssignments = "/assignments"
)

func addOperationsRoutes(
	rg *gin.RouterGroup,
	jobOrderHandler *handlers.JobOrderHandler,
	assignmentHandler *handlers.ServiceAssignmentHandler,
	documentHandler *handlers.DocumentHandler,
) {
	jobOrders := rg.Group(PathJobOrders)
	{
		jobOrders.POST("", jobOrderHandler.CreateJobOrder)
		jobOrders.GET("/:id", jobOrderHandler.GetJobOrder)
		jobOrders.GET("/:id/assignments", assignmentHandler.ListAssignmentsByJobOrder)
		jobOrders.PATCH("/:id/start", jobOrderHandler.StartJobOrder)
		jobOrders.PATCH("/:id/complete", jobOrderHandler.CompleteJobOrder)
		jobOrders.PATCH("/:id/cancel", jobOrderHandler.CancelJobOrder)
		jobOrders.POST("/:id/document", documentHandler.GenerateJobOrderDocument)
	}

	assignments := rg.Group(PathAssignments)
	{
		assignments.POST("", assignmentHandler.CreateAssignment)
		assignments.GET("/:id", assignmentHandler.GetAssignment)
		assignments.PATCH("/:id/complete", assignmentHandler.CompleteAssignment)
		assignments.POST("/:id/document", documentHandler.GenerateAssignmentDocument)
	}
}
