// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bahiapp/bahi-backend/internal/config"
	"github.com/bahiapp/bahi-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if cfg.LogLevel == "info" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Failed to close database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Category{},
		&models.IncomeExpense{},
		&models.StockItem{},
		&models.StockTransaction{},
		&models.Customer{},
		&models.Udhari{},
		&models.Plan{},
		&models.Subscription{},
		&models.Coupon{},
		&models.Notification{},
		&models.FeedbackTicket{},
		&models.ProfileSettings{},
		&models.Banner{},
		&models.Tutorial{},
		&models.ReportExport{},
		&models.AdminActivityLog{},
		&models.AdminRole{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// SeedInitialData creates the subscription plans every deployment starts
// with. Safe to call repeatedly.
func SeedInitialData(db *gorm.DB) error {
	var planCount int64
	if err := db.Model(&models.Plan{}).Count(&planCount).Error; err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if planCount > 0 {
		return nil
	}

	plans := []models.Plan{
		{Name: "Free", Price: decimal.Zero, DurationMonths: 1, IsActive: true},
		{Name: "Premium Monthly", Price: decimal.NewFromInt(99), DurationMonths: 1, IsActive: true},
		{Name: "Premium Yearly", Price: decimal.NewFromInt(999), DurationMonths: 12, IsActive: true},
	}
	if err := db.Create(&plans).Error; err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}

	logrus.Info("Seeded default subscription plans")
	return nil
}
