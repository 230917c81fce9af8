package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"itam/internal/config"
	"itam/internal/models"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("failed to connect to DB (attempt %d/%d): %v", i, maxAttempts, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect to DB after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.Asset{},
		&models.AssetTransfer{},
		&models.Category{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultAdmin()
	seedCategories()
}

func seedDefaultAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@itam.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Status:   models.StatusActive,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}
	log.Printf("created default admin user: %s", email)
}

// seedCategories inserts a baseline option set so the form selects are usable
// on a fresh database. Existing values are left alone.
func seedCategories() {
	baseline := map[string][]string{
		"hardware_type":      {"Laptop", "Desktop", "Server", "Printer", "Monitor", "Network Device"},
		"cadre":              {"Officer", "Staff", "Manager", "Director"},
		"operational_status": {"Active", "Inactive", "Under Maintenance", models.OperationalStatusExpiring, "Retired"},
		"disposition_status": {"In Use", "Available", "Under Repair", models.DispositionStatusSurplus, "Disposed"},
	}

	for catType, values := range baseline {
		var count int64
		if err := DB.Model(&models.Category{}).Where("type = ?", catType).Count(&count).Error; err != nil {
			log.Printf("failed to check %s categories: %v", catType, err)
			continue
		}
		if count > 0 {
			continue
		}
		for _, v := range values {
			if err := DB.Create(&models.Category{Type: catType, Value: v}).Error; err != nil {
				log.Printf("failed to seed category %s/%s: %v", catType, v, err)
			}
		}
	}
}
