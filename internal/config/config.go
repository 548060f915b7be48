package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "8080"
	DefaultSeedPath = "data/seeds/places.json"
	DefaultLogLevel = "info"
	// Earth's mean radius in meters.
	DefaultRadiusMeters = 6371000.0
)

// Runtime settings for the binaries under cmd/.
type Config struct {
	Port                string
	DatabaseURL         string
	SeedPath            string
	LogLevel            string
	DefaultRadiusMeters float64
}

// LoadDotEnv reads .env files into the process environment.
// A missing file is not an error; the returned bool reports whether one was read.
func LoadDotEnv(filenames ...string) (bool, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load dotenv: %w", err)
	}
	return true, nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	radius, err := GetFloat("DEFAULT_RADIUS_METERS", DefaultRadiusMeters)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if math.IsInf(radius, 0) || radius <= 0 {
		return Config{}, fmt.Errorf("load config: DEFAULT_RADIUS_METERS must be a positive number, got %v", radius)
	}

	return Config{
		Port:                Get("PORT", DefaultPort),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:            Get("SEED_PATH", DefaultSeedPath),
		LogLevel:            Get("LOG_LEVEL", DefaultLogLevel),
		DefaultRadiusMeters: radius,
	}, nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%s=%q is not a number", key, v)
	}
	return f, nil
}
