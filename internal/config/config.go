// Package config loads runtime settings for the cycles command from the
// environment (prefix CYCLES) after an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycles/bench"
)

// Prefix is the environment variable prefix.
const Prefix = "CYCLES"

// Config validation errors
var (
	ErrInvalidLogLevel  = errors.New("config: log_level must be a logrus level")
	ErrInvalidLogFormat = errors.New("config: log_format must be 'text' or 'json'")
	ErrInvalidRepeat    = errors.New("config: bench_repeat must be positive")
	ErrInvalidTimeout   = errors.New("config: bench_timeout must be positive")
	ErrInvalidNodes     = errors.New("config: node counts must be positive")
	ErrInvalidSat       = errors.New("config: saturations must lie in [0,100]")
)

// Config holds every environment-driven setting.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Seed      int64  `envconfig:"SEED" default:"0"` // 0 means time-based

	HamiltonianSaturations   []float64 `envconfig:"HAMILTONIAN_SATURATIONS" default:"30,70"`
	NonHamiltonianSaturation float64   `envconfig:"NON_HAMILTONIAN_SATURATION" default:"50"`

	BenchNodes               []int         `envconfig:"BENCH_NODES" default:"11,12,13,14,15,16"`
	BenchNonHamiltonianNodes []int         `envconfig:"BENCH_NON_HAMILTONIAN_NODES" default:"10,12,14,16,18,20"`
	BenchRepeat              int           `envconfig:"BENCH_REPEAT" default:"1"`
	BenchTimeout             time.Duration `envconfig:"BENCH_TIMEOUT" default:"30s"`
	MetricsFile              string        `envconfig:"METRICS_FILE"`
}

// Load reads the given .env files (missing files are skipped; with no
// argument ".env" is tried), then processes the environment into a
// validated Config. Variables already set in the environment win over
// .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidLogLevel
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return ErrInvalidLogFormat
	}
	if c.BenchRepeat < 1 {
		return ErrInvalidRepeat
	}
	if c.BenchTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if len(c.HamiltonianSaturations) == 0 {
		return ErrInvalidSat
	}
	for _, s := range append(append([]float64(nil), c.HamiltonianSaturations...), c.NonHamiltonianSaturation) {
		if s < 0 || s > 100 {
			return ErrInvalidSat
		}
	}
	for _, n := range append(append([]int(nil), c.BenchNodes...), c.BenchNonHamiltonianNodes...) {
		if n <= 0 {
			return ErrInvalidNodes
		}
	}
	return nil
}

// EffectiveSeed returns Seed, or a time-derived seed when Seed is 0.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Bench converts the settings into a benchmark grid.
func (c *Config) Bench() bench.Config {
	return bench.Config{
		HamiltonianNodes:         append([]int(nil), c.BenchNodes...),
		NonHamiltonianNodes:      append([]int(nil), c.BenchNonHamiltonianNodes...),
		HamiltonianSaturations:   append([]float64(nil), c.HamiltonianSaturations...),
		NonHamiltonianSaturation: c.NonHamiltonianSaturation,
		Repeat:                   c.BenchRepeat,
		Timeout:                  c.BenchTimeout,
		Seed:                     c.EffectiveSeed(),
	}
}

// Logger builds a logrus logger honoring LogLevel and LogFormat.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableQuote:     true,
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	}
	return logger
}
