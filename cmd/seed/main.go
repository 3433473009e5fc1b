package main

import (
	"log"
	"os"

	"bathroom-report-api/config"
	"bathroom-report-api/models"
	"bathroom-report-api/services"
	"bathroom-report-api/utils"

	"github.com/joho/godotenv"
)

var defaultCategories = []models.ProblemCategory{
	{Category: "hygiene", Description: "No toilet paper"},
	{Category: "hygiene", Description: "No soap"},
	{Category: "hygiene", Description: "No paper towels"},
	{Category: "hygiene", Description: "Trash bin full"},
	{Category: "hygiene", Description: "Dirty bathroom"},
	{Category: "plumbing", Description: "Flush not working"},
	{Category: "plumbing", Description: "Dripping faucet"},
	{Category: "plumbing", Description: "Clogged toilet"},
	{Category: "plumbing", Description: "Clogged sink"},
	{Category: "structure", Description: "Broken door"},
	{Category: "structure", Description: "Burned-out light"},
	{Category: "structure", Description: "Broken door lock"},
	{Category: "accessibility", Description: "Loose grab bar"},
	{Category: "accessibility", Description: "Ramp problem"},
}

// Seeds the problem categories and the initial admin account. Idempotent.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	log.Println("Seeding database with initial data...")

	for _, category := range defaultCategories {
		if err := db.FirstOrCreate(&models.ProblemCategory{},
			models.ProblemCategory{Category: category.Category, Description: category.Description},
		).Error; err != nil {
			log.Fatal("Failed to seed categories: ", err)
		}
	}
	log.Println("Categories inserted successfully")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("Skipping admin seed: missing SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD")
		return
	}
	if !utils.ValidateEmail(email) {
		log.Fatal("Invalid SEED_ADMIN_EMAIL: ", email)
	}

	role := os.Getenv("SEED_ADMIN_ROLE")
	if role == "" {
		role = models.RoleAdmin
	}
	if !models.IsValidRole(role) {
		log.Fatal("Invalid SEED_ADMIN_ROLE, use: admin, cleaning or maintenance")
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatal("Failed to check existing admin: ", err)
	}
	if count > 0 {
		log.Println("Admin already exists:", email)
		return
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash admin password: ", err)
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         role,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin: ", err)
	}

	log.Println("Admin inserted successfully:", email)
}
