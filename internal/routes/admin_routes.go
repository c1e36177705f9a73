package routes

import (
	"fleet_rental/internal/controllers"
	"fleet_rental/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/vehicles", controllers.ListVehicles)
		admin.GET("/customers", controllers.ListCustomers)
		admin.GET("/rentals", controllers.ListRentals)
	}
}
