package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_rental/internal/config"
	"fleet_rental/internal/models"
)

// CreateVehicle registers a new vehicle into the fleet. The vehicle starts in
// the "available" status unless the request says otherwise.
func CreateVehicle(c *gin.Context) {
	var input struct {
		RegistrationNo  string     `json:"registration_no" binding:"required"`
		Make            string     `json:"make"`
		ModelName       string     `json:"model_name"`
		VehicleClassID  uint       `json:"vehicle_class_id" binding:"required"`
		VehicleStatusID uint       `json:"vehicle_status_id"`
		RegisteredAt    *time.Time `json:"registered_at"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	var class models.VehicleClass
	if err := config.DB.First(&class, input.VehicleClassID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle_class_id does not exist"})
		return
	}

	statusID := input.VehicleStatusID
	if statusID == 0 {
		var available models.VehicleStatus
		if err := config.DB.Where("key_name = ?", "available").First(&available).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve default status"})
			return
		}
		statusID = available.ID
	}

	registeredAt := time.Now()
	if input.RegisteredAt != nil {
		registeredAt = *input.RegisteredAt
	}

	vehicle := models.Vehicle{
		RegistrationNo:  input.RegistrationNo,
		Make:            input.Make,
		ModelName:       input.ModelName,
		VehicleClassID:  input.VehicleClassID,
		VehicleStatusID: statusID,
		RegisteredAt:    registeredAt,
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	invalidateChartCaches()
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	query := config.DB.Preload("VehicleClass").Preload("VehicleStatus")
	if classID := c.Query("vehicle_class_id"); classID != "" {
		query = query.Where("vehicle_class_id = ?", classID)
	}
	if err := query.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func GetVehicle(c *gin.Context) {
	id := c.Param("id")
	var vehicle models.Vehicle
	if err := config.DB.Preload("VehicleClass").Preload("VehicleStatus").First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var input struct {
		RegistrationNo  *string `json:"registration_no"`
		Make            *string `json:"make"`
		ModelName       *string `json:"model_name"`
		VehicleClassID  *uint   `json:"vehicle_class_id"`
		VehicleStatusID *uint   `json:"vehicle_status_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.RegistrationNo != nil {
		vehicle.RegistrationNo = *input.RegistrationNo
	}
	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.ModelName != nil {
		vehicle.ModelName = *input.ModelName
	}
	if input.VehicleClassID != nil {
		vehicle.VehicleClassID = *input.VehicleClassID
	}
	if input.VehicleStatusID != nil {
		vehicle.VehicleStatusID = *input.VehicleStatusID
	}

	config.DB.Save(&vehicle)
	invalidateChartCaches()
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// RetireVehicle marks a vehicle as out of the fleet without deleting its
// history; retired vehicles stop counting toward fleet size from that date.
func RetireVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	if vehicle.RetiredAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Vehicle already retired"})
		return
	}

	var openRental models.Rental
	err := config.DB.Where("vehicle_id = ? AND end_date IS NULL", vehicle.ID).First(&openRental).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Vehicle has an open rental"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check open rentals"})
		return
	}

	now := time.Now()
	vehicle.RetiredAt = &now
	config.DB.Save(&vehicle)

	invalidateChartCaches()
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	config.DB.Delete(&vehicle)
	invalidateChartCaches()
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
