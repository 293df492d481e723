package db

import (
	"log"

	"github.com/urbanmaid/urbanmaid/models"
)

// Migrate applies the schema for the four entity tables. Call after Init.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Helper{},
		&models.Admin{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
