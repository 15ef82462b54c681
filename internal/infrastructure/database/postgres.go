package database

import (
	"fmt"
	"log"
	"time"

	"github.com/laundrypro/laundry-api/internal/config"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Service{},
		&entity.Price{},
		&entity.Discount{},

		// Order entities
		&entity.Customer{},
		&entity.Order{},
		&entity.Payment{},

		// System entities
		&entity.AdminSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the admin settings row and a
// starter service catalog when the store is empty
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create the admin settings row if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.AdminSettings
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.AdminSettings{
					Email:    adminEmail,
					Password: string(hashedPassword),
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin account: %v", err)
				} else {
					log.Printf("Admin account created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin account already exists: %s", adminEmail)
		}
	}

	// Seed the starter catalog only into an empty store
	var serviceCount int64
	if err := db.Model(&entity.Service{}).Count(&serviceCount).Error; err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if serviceCount > 0 {
		log.Println("Default data seeding completed")
		return nil
	}

	type starterService struct {
		name        string
		description string
		pricePerKg  int64
		estimated   string
	}
	starters := []starterService{
		{"Cuci Regular", "Cuci biasa dengan setrika", 8000, "2-3 hari"},
		{"Cuci Express", "Cuci kilat dengan setrika", 12000, "1 hari"},
		{"Cuci + Setrika", "Cuci dan setrika rapi", 10000, "2-3 hari"},
		{"Dry Clean", "Dry cleaning untuk baju formal", 25000, "3-4 hari"},
		{"Cuci Karpet", "Cuci karpet dan permadani", 15000, "4-5 hari"},
	}

	notes := "Harga awal"
	for _, s := range starters {
		desc := s.description
		estimated := s.estimated
		svc := entity.Service{
			ServiceName:    s.name,
			Description:    &desc,
			BasePricePerKg: decimal.NewFromInt(s.pricePerKg),
			EstimatedTime:  &estimated,
		}
		if err := db.Create(&svc).Error; err != nil {
			log.Printf("Warning: failed to create service %s: %v", s.name, err)
			continue
		}

		price := entity.Price{
			ServiceID:     svc.ID,
			PricePerKg:    decimal.NewFromInt(s.pricePerKg),
			EffectiveDate: time.Now(),
			Notes:         &notes,
		}
		if err := db.Create(&price).Error; err != nil {
			log.Printf("Warning: failed to create initial price for %s: %v", s.name, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
