package models

import (
	"gorm.io/gorm"
)

// VehicleStatus is a seedable status row ("available", "rented", "maintenance"...).
// Available marks the subset of statuses that count as in-stock.
type VehicleStatus struct {
	gorm.Model
	Name      string `json:"name" binding:"required"`
	KeyName   string `json:"key_name" gorm:"uniqueIndex" binding:"required"`
	Available bool   `json:"available"`
}
