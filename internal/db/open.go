package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver string
	Path   string
	DSN    string
	Logger zerolog.Logger
}

func Open(options Options) (*gorm.DB, error) {
	switch strings.ToLower(strings.TrimSpace(options.Driver)) {
	case "", DriverSQLite:
		return OpenSQLite(options.Path, options.Logger)
	case DriverPostgres:
		return OpenPostgres(options.DSN, options.Logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", options.Driver)
	}
}

func gormConfig(logger zerolog.Logger) *gorm.Config {
	gormLog := logger.With().Str("component", "gorm").Logger()
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			&gormLog,
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
