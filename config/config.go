package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"storefront-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type Config struct {
	Port     string
	GinMode  string
	DBPath   string
	LogLevel string
	SeedData bool
}

// Load reads settings from the environment, after an optional .env file.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
		DBPath:   getEnv("DB_PATH", "storefront.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		SeedData: getBool("SEED_DATA", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// newGormLogger logs slow queries and errors. A missing row is an expected
// lookup result, not an error.
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// InitDB opens the SQLite backing store and migrates every model.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(log.New(os.Stdout, "\r\n", log.LstdFlags)),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.Vendor{},
		&models.MenuItem{},
		&models.CartEntry{},
		&models.Payment{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Address{},
		&models.Review{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	DB = db
	return db, nil
}
