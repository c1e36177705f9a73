package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet_rental/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables,
// runs migrations and seeds the fixed vehicle status rows.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "fleet_rental")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.VehicleClass{},
		&models.VehicleStatus{},
		&models.Vehicle{},
		&models.Customer{},
		&models.Rental{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	seedVehicleStatuses(db)

	// Assign to global
	DB = db
}

// seedVehicleStatuses makes sure the fixed status rows exist; the Available
// flag is what the stock snapshot keys on.
func seedVehicleStatuses(db *gorm.DB) {
	statuses := []models.VehicleStatus{
		{Name: "Available", KeyName: "available", Available: true},
		{Name: "Rented", KeyName: "rented", Available: false},
		{Name: "In Maintenance", KeyName: "maintenance", Available: false},
		{Name: "In Transfer", KeyName: "transfer", Available: false},
	}
	for _, status := range statuses {
		if err := db.Where(models.VehicleStatus{KeyName: status.KeyName}).
			FirstOrCreate(&status).Error; err != nil {
			log.Printf("could not seed vehicle status %q: %v", status.KeyName, err)
		}
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
