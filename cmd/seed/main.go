// Seeds a demo user for local development.
package main

import (
	"log"
	"os"

	"vendora/internal/config"
	"vendora/internal/models"
	"vendora/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_EMAIL and SEED_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	var existing models.User
	if err := repositories.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Seed user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Name:     config.GetEnv("SEED_NAME", "Demo User"),
	}
	if err := repositories.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create seed user:", err)
	}

	log.Println("Seed user created")
}
