// Package config holds the tunables of a match and loads them from a dotenv
// file and SNAKE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"snake-duel/game/types"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment keys.
const (
	EnvGridSize        = "SNAKE_GRID_SIZE"
	EnvTotalTurns      = "SNAKE_TOTAL_TURNS"
	EnvTickMillis      = "SNAKE_TICK_MS"
	EnvSeed            = "SNAKE_SEED"
	EnvMinFoodDistance = "SNAKE_MIN_FOOD_DISTANCE"
	EnvMaxDistanceSkew = "SNAKE_MAX_DISTANCE_SKEW"
	EnvLogLevel        = "SNAKE_LOG_LEVEL"
)

type Config struct {
	GridSize        int
	TotalTurns      int
	TickInterval    time.Duration
	Seed            uint64 // 0 picks a time-derived seed
	MinFoodDistance int
	MaxDistanceSkew int
	LogLevel        string
}

func Default() Config {
	return Config{
		GridSize:        types.GridSize,
		TotalTurns:      types.TotalTurns,
		TickInterval:    types.TickInterval,
		Seed:            0,
		MinFoodDistance: types.MinFoodDistance,
		MaxDistanceSkew: types.MaxDistanceSkew,
		LogLevel:        "info",
	}
}

// Load starts from Default, merges the dotenv file at path (a missing file is
// ignored) into the process environment, then applies SNAKE_* variables.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridSize, &c.GridSize},
		{EnvTotalTurns, &c.TotalTurns},
		{EnvMinFoodDistance, &c.MinFoodDistance},
		{EnvMaxDistanceSkew, &c.MaxDistanceSkew},
	}
	for _, f := range ints {
		raw, ok := lookup(f.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, f.key, raw, err)
		}
		*f.dst = v
	}

	if raw, ok := lookup(EnvTickMillis); ok && raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTickMillis, raw, err)
		}
		c.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if raw, ok := lookup(EnvSeed); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, raw, err)
		}
		c.Seed = seed
	}

	if raw, ok := lookup(EnvLogLevel); ok && raw != "" {
		c.LogLevel = raw
	}
	return nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 4:
		return fmt.Errorf("%w: grid size %d, need at least 4", ErrInvalid, c.GridSize)
	case c.TotalTurns < 1:
		return fmt.Errorf("%w: total turns %d, need at least 1", ErrInvalid, c.TotalTurns)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %s", ErrInvalid, c.TickInterval)
	case c.MinFoodDistance < 0:
		return fmt.Errorf("%w: min food distance %d", ErrInvalid, c.MinFoodDistance)
	case c.MaxDistanceSkew < 0:
		return fmt.Errorf("%w: max distance skew %d", ErrInvalid, c.MaxDistanceSkew)
	}
	return nil
}
