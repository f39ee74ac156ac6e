package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// InitDatabase opens the connection described by cfg. Both PostgreSQL and
// SQLite are supported; startup waits for the database with a short
// exponential backoff so the service survives a slow database container.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	const maxRetries = 5
	delay := 1 * time.Second

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		switch driver {
		case "postgres", "postgresql":
			db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		case "sqlite", "":
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
		}

		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				err = pingErr
			} else {
				configureConnectionPool(sqlDB)
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxRetries {
			time.Sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
}
