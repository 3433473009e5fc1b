package main

import (
	"log"

	"bathroom-report-api/config"
	"bathroom-report-api/models"

	"github.com/joho/godotenv"
)

// Creates the four application tables. Safe to re-run.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	log.Println("Setting up database tables...")

	err = db.AutoMigrate(
		&models.ProblemCategory{},
		&models.Report{},
		&models.StatusHistory{},
		&models.Admin{},
	)
	if err != nil {
		log.Fatal("Failed to migrate tables: ", err)
	}

	log.Println("Database tables created successfully")
}
