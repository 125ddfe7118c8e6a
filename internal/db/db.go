package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/config"
	"github.com/smartque/smartque-api/internal/models"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Department{},
		&models.Counter{},
		&models.AuditLog{},
		&models.PaymentRequest{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedAdmin(db, cfg, log)

	return db
}

// seedAdmin creates a default admin account if none exists yet.
func seedAdmin(db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		log.WithError(err).Warn("admin seed check failed")
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Warn("admin seed hash failed")
		return
	}

	admin := models.User{
		Email:           cfg.AdminEmail,
		PasswordHash:    string(hashed),
		Name:            cfg.AdminName,
		Role:            "admin",
		IsEmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Warn("admin seed failed")
		return
	}

	log.WithField("email", cfg.AdminEmail).
		Info("default admin created, change this account in production")
}
