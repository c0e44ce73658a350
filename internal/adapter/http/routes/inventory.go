package routes

import (
	"adspace_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBillboards = "/billboards"
	PathBookings   = "/bookings"
)

func addInventoryRoutes(rg *gin.RouterGroup, billboardHandler *handlers.BillboardHandler, bookingHandler *handlers.BookingHandler) {
	billboards := rg.Group(PathBillboards)
	{
		billboards.POST("", billboardHandler.CreateBillboard)
		billboards.GET("", billboardHandler.ListBillboards)
		billboards.GET("/:id", billboardHandler.GetBillboard)
		billboards.PATCH("/:id/status", billboardHandler.UpdateBillboardStatus)
		billboards.PATCH("/:id/rate", billboardHandler.UpdateBillboardRate)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)
	}
}
