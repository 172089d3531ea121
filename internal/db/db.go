package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/homevista/realtor-api/internal/config"
	"github.com/homevista/realtor-api/internal/models"
)

// AllModels is the migration set, shared by NewDB and the migrate CLI.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.Home{},
		&models.Image{},
		&models.Message{},
		&models.AuditLog{},
	}
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(AllModels()...); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
