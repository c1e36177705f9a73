package routes

import (
	"fleet_rental/internal/controllers"
	"fleet_rental/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RentalRoutes(r *gin.Engine) {
	rentals := r.Group("/rentals")
	{
		rentals.GET("/", middleware.RequirePermission("rentals:list"), controllers.ListRentals)
		rentals.GET("/:id", middleware.RequirePermission("rentals:list"), controllers.GetRental)
		rentals.POST("/", middleware.RequirePermission("rentals:create"), controllers.CreateRental)
		rentals.POST("/:id/close", middleware.RequirePermission("rentals:close"), controllers.CloseRental)
	}
}
