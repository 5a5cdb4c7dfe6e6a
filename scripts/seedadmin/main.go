// Command seedadmin creates or updates an admin user.
//
// Usage: seedadmin -email admin@example.com -password mysecretpassword
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"detailing-app-server/internal/config"
	"detailing-app-server/internal/models"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: seedadmin -email <email> -password <password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	user := models.User{Email: *email, Password: string(hash)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password"}),
	}).Create(&user).Error
	if err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
	}

	log.Printf("Admin user created/updated: %s", *email)
}
