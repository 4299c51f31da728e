package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexiusacademia/gofound/internal/din"
	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment keys
const (
	KeyElasticModulus      = "GOFOUND_ELASTIC_MODULUS"
	KeySoilBearingCapacity = "GOFOUND_SOIL_BEARING_CAPACITY"
	KeyFck                 = "GOFOUND_FCK"
	KeyFy                  = "GOFOUND_FY"
	KeyLogLevel            = "GOFOUND_LOG_LEVEL"
	KeyAddr                = "GOFOUND_ADDR"
)

// Config holds application configuration loaded from the environment
type Config struct {
	Material footing.Material
	LogLevel log.Level
	Addr     string
}

// Load reads an optional .env file and then the process environment.
// Unset keys keep the DIN defaults.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		Material: din.DefaultMaterial(),
		LogLevel: log.InfoLevel,
		Addr:     ":8080",
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{KeyElasticModulus, &cfg.Material.ElasticModulus},
		{KeySoilBearingCapacity, &cfg.Material.SoilBearingCapacity},
		{KeyFck, &cfg.Material.Fck},
		{KeyFy, &cfg.Material.Fy},
	}
	for _, f := range floats {
		raw := os.Getenv(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", f.key, raw)
		}
		*f.dst = v
	}

	if raw := os.Getenv(KeyLogLevel); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if addr := os.Getenv(KeyAddr); addr != "" {
		cfg.Addr = addr
	}

	return cfg, nil
}
