package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_rental/internal/config"
	"fleet_rental/internal/models"
)

// ListVehicleStatuses lists the status rows, seeded at boot and extendable
// from the settings screen.
func ListVehicleStatuses(c *gin.Context) {
	var statuses []models.VehicleStatus
	if err := config.DB.Order("id ASC").Find(&statuses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vehicle statuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": statuses})
}

func CreateVehicleStatus(c *gin.Context) {
	var input models.VehicleStatus
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create vehicle status: " + err.Error()})
		return
	}

	invalidateChartCaches()
	c.JSON(http.StatusCreated, gin.H{"vehicle_status": input})
}
