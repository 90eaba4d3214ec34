package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"student-grades/internal/config"
	"student-grades/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the configured database and makes sure student_grades exists,
// either by migrating it or by checking for it.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger(cfg.DBLogLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// sqlite allows a single writer, and every :memory: connection is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}

	if err := EnsureSchema(db, cfg.DBAutoMigrate); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}

// EnsureSchema migrates the student_grades table when migrate is set,
// otherwise fails if the table is missing.
func EnsureSchema(db *gorm.DB, migrate bool) error {
	if migrate {
		if err := db.AutoMigrate(&model.GradeRecord{}); err != nil {
			return fmt.Errorf("failed to auto-migrate the database: %w", err)
		}
		return nil
	}

	if !db.Migrator().HasTable(&model.GradeRecord{}) {
		return fmt.Errorf("table %s does not exist (set DB_AUTO_MIGRATE=true to create it)", model.GradeRecord{}.TableName())
	}
	return nil
}

func openDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(cfg.PostgresDSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func newLogger(level string) logger.Interface {
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseLogLevel(level),
		IgnoreRecordNotFoundError: true,
	})
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
