// Package config loads the gridsearchd service configuration from an
// optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalid indicates an environment value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr         = "GRIDSEARCH_ADDR"
	EnvGinMode      = "GIN_MODE"
	EnvDefaultSpeed = "GRIDSEARCH_DEFAULT_SPEED"
	EnvMaxCells     = "GRIDSEARCH_MAX_CELLS"
	EnvLogLevel     = "GRIDSEARCH_LOG_LEVEL"
)

// Config holds the service configuration values.
type Config struct {
	Addr         string     // listen address of the HTTP server
	GinMode      string     // gin mode: debug, release or test
	DefaultSpeed int        // animation speed used when a run request omits it
	MaxCells     int        // largest grid (width×height) accepted
	LogLevel     slog.Level // minimum level of the service logger
}

// Load reads files (".env" when none are given) into the environment, then
// builds the Config. A missing default .env is not an error; a missing
// explicitly named file is. Variables already set in the environment win
// over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: reading .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("config: reading %v: %w", files, err)
	}

	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		Addr:    getEnvWithDefault(EnvAddr, ":8080"),
		GinMode: getEnvWithDefault(EnvGinMode, "release"),
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvGinMode, cfg.GinMode)
	}

	var err error
	if cfg.DefaultSpeed, err = getEnvAsPositiveInt(EnvDefaultSpeed, 5); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = getEnvAsPositiveInt(EnvMaxCells, 10000); err != nil {
		return Config{}, err
	}
	level := getEnvWithDefault(EnvLogLevel, "info")
	if err = cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLogLevel, level)
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsPositiveInt retrieves an environment variable as an integer > 0.
func getEnvAsPositiveInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalid, key, valueStr)
	}
	return value, nil
}
