package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/daystreak/internal/config"
	"github.com/terraincognita07/daystreak/internal/db"
	"github.com/terraincognita07/daystreak/internal/logger"
	"gorm.io/gorm"
)

type bootstrap struct {
	cfg      *config.Config
	log      zerolog.Logger
	location *time.Location
}

func loadRuntime() (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &bootstrap{
		cfg:      cfg,
		log:      logger.New(cfg.Log.Level, cfg.Log.Pretty),
		location: location,
	}, nil
}

func (rt *bootstrap) openDatabase() (*gorm.DB, func(), error) {
	database, err := db.Open(db.Options{
		Driver: rt.cfg.Database.Driver,
		Path:   rt.cfg.Database.Path,
		DSN:    rt.cfg.Database.DSN,
		Logger: rt.log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}

	closeDatabase := func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return database, closeDatabase, nil
}
