package routes

import (
	"fleet_rental/internal/controllers"
	"fleet_rental/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequirePermission("vehicles:list"))
	{
		vehicles.GET("/", controllers.ListVehicles)
		vehicles.GET("/:id", controllers.GetVehicle)
	}

	manage := r.Group("/vehicles")
	manage.Use(middleware.RequirePermission("vehicles:manage"))
	{
		manage.POST("/", controllers.CreateVehicle)
		manage.PUT("/:id", controllers.UpdateVehicle)
		manage.POST("/:id/retire", controllers.RetireVehicle)
		manage.DELETE("/:id", controllers.DeleteVehicle)
	}

	classes := r.Group("/vehicle-classes")
	classes.Use(middleware.RequireAuth())
	{
		classes.GET("/", controllers.ListVehicleClasses)
		classes.GET("/:id", controllers.GetVehicleClass)
	}

	manageClasses := r.Group("/vehicle-classes")
	manageClasses.Use(middleware.RequirePermission("classes:manage"))
	{
		manageClasses.POST("/", controllers.CreateVehicleClass)
		manageClasses.PUT("/:id", controllers.UpdateVehicleClass)
		manageClasses.DELETE("/:id", controllers.DeleteVehicleClass)
	}

	statuses := r.Group("/vehicle-statuses")
	statuses.Use(middleware.RequireAuth())
	{
		statuses.GET("/", controllers.ListVehicleStatuses)
	}

	manageStatuses := r.Group("/vehicle-statuses")
	manageStatuses.Use(middleware.RequirePermission("statuses:manage"))
	{
		manageStatuses.POST("/", controllers.CreateVehicleStatus)
	}
}
