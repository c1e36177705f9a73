package routes

import (
	"fleet_rental/internal/controllers"
	"fleet_rental/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CustomerRoutes(r *gin.Engine) {
	customers := r.Group("/customers")
	{
		customers.GET("/", middleware.RequirePermission("customers:list"), controllers.ListCustomers)
		customers.GET("/:id", middleware.RequirePermission("customers:list"), controllers.GetCustomer)
		customers.POST("/", middleware.RequirePermission("customers:create"), controllers.CreateCustomer)
		customers.PUT("/:id", middleware.RequirePermission("customers:manage"), controllers.UpdateCustomer)
		customers.DELETE("/:id", middleware.RequirePermission("customers:manage"), controllers.DeleteCustomer)
	}
}
