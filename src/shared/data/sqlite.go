package data

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectSQLite opens the single-file store with sane defaults.
func ConnectSQLite(path string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
}

func MustSQLite(path string) *gorm.DB {
	db, err := ConnectSQLite(path)
	if err != nil {
		log.Fatalf("sqlite: %v", err)
	}
	return db
}

// Migrate creates or updates the schema. Safe to call on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Project{},
		&types.Service{},
		&types.Vote{},
		&types.Wallet{},
	)
}
