package database

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	donorModel "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/model"
	fundingModel "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/model"
	requestModel "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/model"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
)

var DB *gorm.DB

func ConnectDB() {
	logger.Log.Info("connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=vitalflow&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		TranslateError: true, // unique violations become gorm.ErrDuplicatedKey
	})
	if err != nil {
		logger.Log.Fatal("DB connect failed", zap.Error(err))
	}
	DB = db
	logger.Log.Info("DB connected")
}

// Migrate creates the three ledgers. The unique indexes on donors.donor_email and
// payment_records.transaction_id are what the engines rely on for race-free writes.
func Migrate() {
	if err := DB.AutoMigrate(
		&donorModel.Donor{},
		&requestModel.DonationRequest{},
		&fundingModel.PaymentRecord{},
	); err != nil {
		logger.Log.Fatal("auto-migration failed", zap.Error(err))
	}
	logger.Log.Info("migrations applied")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Log.Warn("pool tune failed", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// light touch so the pool is filled before the first real request
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			logger.Log.Warn("warm-up ping failed", zap.Error(err))
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
