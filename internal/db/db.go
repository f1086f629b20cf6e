package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fitledger/fitledger/internal/models"
)

// Open connects to the database named by databaseURL: a postgres URL selects
// the postgres driver, anything else is treated as a sqlite file path.
// Unique-constraint violations are translated to gorm.ErrDuplicatedKey on
// both dialects so the repositories can classify them uniformly.
func Open(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		if err := os.MkdirAll(filepath.Dir(databaseURL), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dialector = sqlite.Open(fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", databaseURL))
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(database); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.BodyMeasurement{},
		&models.Goal{},
		&models.Achievement{},
		&models.Share{},
		&models.WorkoutSchedule{},
	)
}
