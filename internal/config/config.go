package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultLogLevel    = "info"
	defaultEnvironment = "production"
	defaultMethod      = "cwt"
	defaultMinWidth    = 2
	defaultMaxWidth    = 10
	defaultMinSNR      = 10.0
)

// Config holds the peakfind defaults. Command-line flags override them.
type Config struct {
	LogLevel    string
	Environment string
	Method      string
	MinWidth    int
	MaxWidth    int
	MinSNR      float64
}

// Load reads an optional .env file, then PEAKFIND_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{
		LogLevel:    defaultLogLevel,
		Environment: defaultEnvironment,
		Method:      defaultMethod,
		MinWidth:    defaultMinWidth,
		MaxWidth:    defaultMaxWidth,
		MinSNR:      defaultMinSNR,
	}

	if v := strings.TrimSpace(os.Getenv("PEAKFIND_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv("PEAKFIND_ENV")); v != "" {
		cfg.Environment = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv("PEAKFIND_METHOD")); v != "" {
		cfg.Method = strings.ToLower(v)
	}

	if n, ok, err := readIntEnv("PEAKFIND_MIN_WIDTH"); err != nil {
		return Config{}, err
	} else if ok {
		cfg.MinWidth = n
	}

	if n, ok, err := readIntEnv("PEAKFIND_MAX_WIDTH"); err != nil {
		return Config{}, err
	} else if ok {
		cfg.MaxWidth = n
	}

	if v := strings.TrimSpace(os.Getenv("PEAKFIND_MIN_SNR")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse PEAKFIND_MIN_SNR: %w", err)
		}
		cfg.MinSNR = f
	}

	switch cfg.Environment {
	case "production", "development", "test":
	default:
		return Config{}, fmt.Errorf("PEAKFIND_ENV must be one of: production, development, test")
	}

	switch cfg.Method {
	case "cwt", "zscore":
	default:
		return Config{}, fmt.Errorf("PEAKFIND_METHOD must be one of: cwt, zscore")
	}

	if cfg.MaxWidth < cfg.MinWidth {
		return Config{}, fmt.Errorf("PEAKFIND_MAX_WIDTH (%d) must not be below PEAKFIND_MIN_WIDTH (%d)", cfg.MaxWidth, cfg.MinWidth)
	}

	return cfg, nil
}

func readIntEnv(key string) (int, bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("parse %s: %w", key, err)
	}
	if n <= 0 {
		return 0, false, fmt.Errorf("%s must be positive", key)
	}

	return n, true, nil
}
