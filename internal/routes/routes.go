package routes

import (
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	AuthRoutes(r)
	ChartRoutes(r)
	VehicleRoutes(r)
	RentalRoutes(r)
	CustomerRoutes(r)
	AdminRoutes(r)

	return r
}
