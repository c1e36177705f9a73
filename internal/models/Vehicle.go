// internal/models/Vehicle.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	RegistrationNo  string     `json:"registration_no" gorm:"uniqueIndex"`
	Make            string     `json:"make"`
	ModelName       string     `json:"model_name"`
	VehicleClassID  uint       `json:"vehicle_class_id" gorm:"index"`
	VehicleStatusID uint       `json:"vehicle_status_id" gorm:"index"`
	RegisteredAt    time.Time  `json:"registered_at"`
	RetiredAt       *time.Time `json:"retired_at,omitempty"` // nil while the vehicle is still in the fleet

	VehicleClass  VehicleClass  `gorm:"foreignKey:VehicleClassID" json:"vehicle_class,omitempty"`
	VehicleStatus VehicleStatus `gorm:"foreignKey:VehicleStatusID" json:"vehicle_status,omitempty"`
}
