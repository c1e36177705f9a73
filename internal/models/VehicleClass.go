// internal/models/VehicleClass.go
package models

import (
	"gorm.io/gorm"
)

// VehicleClass groups vehicles into rentable categories (e.g. "Compact", "Van").
// KeyName is the stable identifier the dashboard uses as a data-series key;
// Color is the fill the charts render the class with.
type VehicleClass struct {
	gorm.Model
	Name    string `json:"name" binding:"required"`
	KeyName string `json:"key_name" gorm:"uniqueIndex" binding:"required"`
	Color   string `json:"color"` // hex, e.g. "#2563eb"

	Vehicles []Vehicle `gorm:"foreignKey:VehicleClassID" json:"vehicles,omitempty"`
}
