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

// CreateRental opens a rental for a vehicle. The vehicle's class id is
// denormalized onto the rental row so chart aggregation stays join-free, and
// the vehicle flips to the "rented" status.
func CreateRental(c *gin.Context) {
	var input struct {
		VehicleID  uint       `json:"vehicle_id" binding:"required"`
		CustomerID uint       `json:"customer_id" binding:"required"`
		StartDate  *time.Time `json:"start_date"`
		EndDate    *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental input: " + err.Error()})
		return
	}

	startDate := time.Now()
	if input.StartDate != nil {
		startDate = *input.StartDate
	}
	if input.EndDate != nil && input.EndDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle_id does not exist"})
		return
	}
	if vehicle.RetiredAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is retired"})
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id does not exist"})
		return
	}

	var open models.Rental
	err := config.DB.Where("vehicle_id = ? AND end_date IS NULL", vehicle.ID).First(&open).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Vehicle already has an open rental"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check open rentals"})
		return
	}

	rental := models.Rental{
		VehicleID:      vehicle.ID,
		VehicleClassID: vehicle.VehicleClassID,
		CustomerID:     customer.ID,
		StartDate:      startDate,
		EndDate:        input.EndDate,
		Status:         "open",
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}
	if err := tx.Create(&rental).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental: " + err.Error()})
		return
	}
	if err := setVehicleStatus(tx, &vehicle, "rented"); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle status"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	invalidateChartCaches()
	c.JSON(http.StatusCreated, gin.H{"rental": rental})
}

func ListRentals(c *gin.Context) {
	query := config.DB.Preload("Vehicle").Preload("Customer")
	if c.Query("open") == "true" {
		query = query.Where("end_date IS NULL")
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var rentals []models.Rental
	if err := query.Order("start_date DESC").Find(&rentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rentals: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rentals})
}

func GetRental(c *gin.Context) {
	id := c.Param("id")
	var rental models.Rental
	if err := config.DB.Preload("Vehicle").Preload("Customer").First(&rental, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rental": rental})
}

// CloseRental ends an open rental and returns its vehicle to stock.
func CloseRental(c *gin.Context) {
	id := c.Param("id")

	var rental models.Rental
	if err := config.DB.First(&rental, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}
	if rental.EndDate != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Rental already closed"})
		return
	}

	var input struct {
		EndDate *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid close input"})
		return
	}

	endDate := time.Now()
	if input.EndDate != nil {
		endDate = *input.EndDate
	}
	if endDate.Before(rental.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	rental.EndDate = &endDate
	rental.Status = "closed"

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, rental.VehicleID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load rental vehicle"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}
	if err := tx.Save(&rental).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close rental"})
		return
	}
	if err := setVehicleStatus(tx, &vehicle, "available"); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle status"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	invalidateChartCaches()
	c.JSON(http.StatusOK, gin.H{"rental": rental})
}

func setVehicleStatus(tx *gorm.DB, vehicle *models.Vehicle, statusKey string) error {
	var status models.VehicleStatus
	if err := tx.Where("key_name = ?", statusKey).First(&status).Error; err != nil {
		return err
	}
	vehicle.VehicleStatusID = status.ID
	return tx.Save(vehicle).Error
}
