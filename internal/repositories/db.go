// Package repositories provides the data access layer.
// It handles all database operations and data persistence logic.
package repositories

import (
	"database/sql"
	"log"
	"os"
	"time"

	"vendora/internal/config"
	"vendora/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// InitDB initializes the database connection, configures the pool and runs
// migrations for the payment subsystem models.
func InitDB() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "vendora") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=disable"

	// Connect through database/sql with the pq driver so repository code
	// can inspect pq error codes (unique_violation on user_id+last4).
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = db

	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	// Ignore "record not found" noise: lookup misses are a normal outcome
	// for card update/delete flows.
	db.Logger = logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)

	return db.AutoMigrate(
		&models.User{},
		&models.StoredCard{},
		&models.Order{},
		&models.WorkflowRun{},
	)
}
