package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_rental/internal/config"
	"fleet_rental/internal/models"
)

// CreateVehicleClass registers a new rentable category
func CreateVehicleClass(c *gin.Context) {
	var input models.VehicleClass
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create vehicle class: " + err.Error()})
		return
	}

	invalidateChartCaches()
	c.JSON(http.StatusCreated, gin.H{"vehicle_class": input})
}

// GetVehicleClass retrieves a class by ID with its vehicles
func GetVehicleClass(c *gin.Context) {
	id := c.Param("id")
	var class models.VehicleClass
	if err := config.DB.Preload("Vehicles").First(&class, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle class not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle_class": class})
}

// ListVehicleClasses lists all classes
func ListVehicleClasses(c *gin.Context) {
	var classes []models.VehicleClass
	if err := config.DB.Order("id ASC").Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vehicle classes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": classes})
}

// UpdateVehicleClass modifies an existing class. KeyName is immutable once
// created; it is the series key stored in every chart the frontend caches.
func UpdateVehicleClass(c *gin.Context) {
	id := c.Param("id")
	var class models.VehicleClass
	if err := config.DB.First(&class, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle class not found"})
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		class.Name = *input.Name
	}
	if input.Color != nil {
		class.Color = *input.Color
	}

	if err := config.DB.Save(&class).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update vehicle class"})
		return
	}

	invalidateChartCaches()
	c.JSON(http.StatusOK, gin.H{"vehicle_class": class})
}

// DeleteVehicleClass removes a class that has no vehicles left in it
func DeleteVehicleClass(c *gin.Context) {
	id := c.Param("id")
	var class models.VehicleClass
	if err := config.DB.First(&class, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle class not found"})
		return
	}

	var count int64
	config.DB.Model(&models.Vehicle{}).Where("vehicle_class_id = ?", class.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Vehicle class still has vehicles"})
		return
	}

	config.DB.Delete(&class)
	invalidateChartCaches()
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle class deleted"})
}
