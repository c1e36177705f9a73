package routes

import (
	"fleet_rental/internal/controllers"
	"fleet_rental/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ChartRoutes exposes the two dashboard aggregation endpoints. Both sit
// behind the rentals:list permission.
func ChartRoutes(r *gin.Engine) {
	r.GET("/rental-chart",
		middleware.RequirePermission("rentals:list"),
		controllers.RentalChart)
	r.GET("/vehicle-stock-chart",
		middleware.RequirePermission("rentals:list"),
		controllers.VehicleStockChart)
}
