package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"rental-inventory-backend/internal/config"
	"rental-inventory-backend/internal/database"
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/password"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching the YAML file
type UserData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
}

type ModelData struct {
	Brand string `yaml:"brand"`
	Name  string `yaml:"name"`
}

type ItemData struct {
	Barcode  string `yaml:"barcode"`
	Category string `yaml:"category"`
	Brand    string `yaml:"brand"`
	Model    string `yaml:"model"`
	Note     string `yaml:"note,omitempty"`
}

type SeedFile struct {
	Organization struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"organization"`
	Users      []UserData  `yaml:"users"`
	Brands     []string    `yaml:"brands"`
	Categories []string    `yaml:"categories"`
	Models     []ModelData `yaml:"models"`
	Items      []ItemData  `yaml:"items"`
}

func main() {
	log.Println("Loading initial data from YAML...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedFile(db, "scripts/data/inventory.yaml"); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not reachable after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		org := models.Organization{Name: seed.Organization.Name, Email: seed.Organization.Email}
		if err := tx.Where("name = ?", org.Name).FirstOrCreate(&org).Error; err != nil {
			return fmt.Errorf("organization %q: %w", org.Name, err)
		}
		tenant := models.Tenant{OrganizationID: org.ID}

		for _, u := range seed.Users {
			hash, err := password.Hash(u.Password)
			if err != nil {
				return err
			}
			email := u.Email
			user := models.User{
				Tenant:       tenant,
				FirstName:    u.FirstName,
				LastName:     u.LastName,
				Email:        &email,
				PasswordHash: &hash,
				Role:         models.UserRole(u.Role),
			}
			if err := tx.Where("email = ?", u.Email).FirstOrCreate(&user).Error; err != nil {
				return fmt.Errorf("user %q: %w", u.Email, err)
			}
		}

		brands := make(map[string]models.Brand, len(seed.Brands))
		for _, name := range seed.Brands {
			brand := models.Brand{Tenant: tenant, Name: name}
			if err := tx.Where("organization_id = ? AND name = ?", org.ID, name).FirstOrCreate(&brand).Error; err != nil {
				return fmt.Errorf("brand %q: %w", name, err)
			}
			brands[name] = brand
		}

		categories := make(map[string]models.Category, len(seed.Categories))
		for _, name := range seed.Categories {
			category := models.Category{Tenant: tenant, Name: name}
			if err := tx.Where("organization_id = ? AND name = ?", org.ID, name).FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			categories[name] = category
		}

		modelsByKey := make(map[string]models.Model, len(seed.Models))
		for _, m := range seed.Models {
			brand, ok := brands[m.Brand]
			if !ok {
				return fmt.Errorf("model %q references unknown brand %q", m.Name, m.Brand)
			}
			model := models.Model{Tenant: tenant, BrandID: brand.ID, Name: m.Name}
			if err := tx.Where("organization_id = ? AND brand_id = ? AND name = ?", org.ID, brand.ID, m.Name).FirstOrCreate(&model).Error; err != nil {
				return fmt.Errorf("model %q: %w", m.Name, err)
			}
			modelsByKey[m.Brand+"/"+m.Name] = model
		}

		for _, i := range seed.Items {
			category, ok := categories[i.Category]
			if !ok {
				return fmt.Errorf("item %q references unknown category %q", i.Barcode, i.Category)
			}
			model, ok := modelsByKey[i.Brand+"/"+i.Model]
			if !ok {
				return fmt.Errorf("item %q references unknown model %q/%q", i.Barcode, i.Brand, i.Model)
			}
			item := models.Item{
				Tenant:     tenant,
				CategoryID: category.ID,
				ModelID:    model.ID,
				Barcode:    i.Barcode,
				Note:       i.Note,
			}
			if err := tx.Where("barcode = ?", i.Barcode).FirstOrCreate(&item).Error; err != nil {
				return fmt.Errorf("item %q: %w", i.Barcode, err)
			}
		}

		return nil
	})
}
