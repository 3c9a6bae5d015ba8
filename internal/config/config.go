// Package config loads runtime settings from DAYSTREAK_* environment
// variables (and a .env file when present) and validates them.
//
// Nested keys use a double underscore: DAYSTREAK_SERVER__PORT maps to
// server.port.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix              = "DAYSTREAK_"
	insecureSecretKey      = "change_me_in_production"
	minSecretKeyLength     = 32
	defaultShutdownTimeout = 10 * time.Second
)

var ErrInsecureSecretKey = errors.New("auth secret key must be at least 32 characters and not the placeholder")

type Config struct {
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log" validate:"required"`
	TZ       string         `koanf:"tz" validate:"required"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins" validate:"required,min=1"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=sqlite postgres"`
	Path   string `koanf:"path" validate:"required_if=Driver sqlite"`
	DSN    string `koanf:"dsn" validate:"required_if=Driver postgres"`
}

type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// RedisConfig is optional; an empty address disables the profile cache.
type RedisConfig struct {
	Address string        `koanf:"address"`
	TTL     time.Duration `koanf:"ttl" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

func defaults() map[string]any {
	return map[string]any{
		"server.port":             "8080",
		"server.shutdown_timeout": defaultShutdownTimeout.String(),
		"server.cors_origins":     []string{"*"},
		"database.driver":         "sqlite",
		"database.path":           "data/daystreak.db",
		"redis.ttl":               "10m",
		"log.level":               "info",
		"log.pretty":              false,
		"tz":                      "UTC",
	}
}

// listKeys are comma separated in the environment.
var listKeys = map[string]bool{
	"server.cors_origins": true,
}

func envKeyValue(rawKey string, value string) (string, interface{}) {
	trimmed := strings.TrimPrefix(rawKey, envPrefix)
	key := strings.ReplaceAll(strings.ToLower(trimmed), "__", ".")
	if listKeys[key] {
		items := strings.Split(value, ",")
		for index := range items {
			items[index] = strings.TrimSpace(items[index])
		}
		return key, items
	}
	return key, value
}

// Load reads defaults and the environment into a validated Config.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	secret := strings.TrimSpace(cfg.Auth.SecretKey)
	if secret == insecureSecretKey || len(secret) < minSecretKeyLength {
		return ErrInsecureSecretKey
	}
	return nil
}

func (cfg *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.TZ, err)
	}
	return location, nil
}
