// Package store persists notes and users with gorm.
package store

import (
	"context"
	errs "errors"
	"time"

	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errs.New("record not found")
	ErrDuplicate = errs.New("record already exists")
)

type Store struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the schema.
func Open(cfg types.Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case types.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", cfg.DBDriver)
	}
	return New(db)
}

func New(db *gorm.DB) (*Store, error) {
	gormTables := []any{
		&types.User{},
		&types.Note{},
	}
	for _, t := range gormTables {
		if err := db.AutoMigrate(t); err != nil {
			return nil, errors.Wrap(err, "Failed to migrate")
		}
	}
	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql handle")
	}
	return errors.Wrap(sqlDB.PingContext(ctx), "pinging database")
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql handle")
	}
	return sqlDB.Close()
}

// newGormLogger sends gorm's SQL traces through logrus. Missing records are
// expected on every 404 and are not logged.
func newGormLogger(level logrus.Level) logger.Interface {
	return logger.New(logrus.WithField("component", "gorm"), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(level),
		IgnoreRecordNotFoundError: true,
	})
}

func gormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}

// notFound folds gorm's missing-record error into ErrNotFound.
func notFound(err error) error {
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
