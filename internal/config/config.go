// Package config provides Viper-based configuration loading for the simulation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// EnvPrefix prefixes every environment override, e.g. LANCE_SIMULATION_SEED.
const EnvPrefix = "LANCE"

// MaxTickRate bounds simulation.tick_rate so TickInterval stays at least a
// millisecond.
const MaxTickRate = 1000

// AbilitiesConfig is the player's point-buy allocation.
type AbilitiesConfig struct {
	Strength     int `mapstructure:"strength"`
	Dexterity    int `mapstructure:"dexterity"`
	Constitution int `mapstructure:"constitution"`
	Intelligence int `mapstructure:"intelligence"`
	Wisdom       int `mapstructure:"wisdom"`
	Charisma     int `mapstructure:"charisma"`
}

// Abilities converts the allocation to character scores.
func (a AbilitiesConfig) Abilities() character.Abilities {
	return character.Abilities{
		Strength:     a.Strength,
		Dexterity:    a.Dexterity,
		Constitution: a.Constitution,
		Intelligence: a.Intelligence,
		Wisdom:       a.Wisdom,
		Charisma:     a.Charisma,
	}
}

// SimulationConfig holds dungeon and tick settings.
type SimulationConfig struct {
	// Width and Height are the grid dimensions in cells.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// TileSize is the edge length of one cell in world units.
	TileSize float64 `mapstructure:"tile_size"`
	// Seed selects a deterministic dice source; zero uses crypto randomness.
	Seed uint64 `mapstructure:"seed"`
	// TickRate is the number of ticks per second for the real-time runner.
	TickRate int `mapstructure:"tick_rate"`
	// MaxTicks stops the runner after that many ticks; zero runs until the
	// game ends or the process is signalled.
	MaxTicks      uint64  `mapstructure:"max_ticks"`
	SpawnAttempts int     `mapstructure:"spawn_attempts"`
	PlayerName    string  `mapstructure:"player_name"`
	ViewportW     float64 `mapstructure:"viewport_width"`
	ViewportH     float64 `mapstructure:"viewport_height"`
	// Abilities must pass the point-buy rules.
	Abilities AbilitiesConfig `mapstructure:"abilities"`
}

// TickInterval returns the wall-clock time between ticks.
//
// Precondition: TickRate in [1, MaxTickRate].
func (s SimulationConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// FileLogConfig holds the rotating log file settings.
type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File optionally tees output into a rotated file.
	File FileLogConfig `mapstructure:"file"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Width < world.MinDimension {
		errs = append(errs, fmt.Sprintf("simulation.width must be >= %d, got %d", world.MinDimension, s.Width))
	}
	if s.Height < world.MinDimension {
		errs = append(errs, fmt.Sprintf("simulation.height must be >= %d, got %d", world.MinDimension, s.Height))
	}
	if s.TileSize <= 0 {
		errs = append(errs, fmt.Sprintf("simulation.tile_size must be > 0, got %g", s.TileSize))
	}
	if s.TickRate < 1 || s.TickRate > MaxTickRate {
		errs = append(errs, fmt.Sprintf("simulation.tick_rate must be in [1, %d], got %d", MaxTickRate, s.TickRate))
	}
	if s.SpawnAttempts < 1 {
		errs = append(errs, fmt.Sprintf("simulation.spawn_attempts must be >= 1, got %d", s.SpawnAttempts))
	}
	if strings.TrimSpace(s.PlayerName) == "" {
		errs = append(errs, "simulation.player_name must not be empty")
	}
	if s.ViewportW <= 0 || s.ViewportH <= 0 {
		errs = append(errs, fmt.Sprintf("simulation.viewport_width and viewport_height must be > 0, got %gx%g", s.ViewportW, s.ViewportH))
	}
	if err := character.ValidatePointBuy(s.Abilities.Abilities()); err != nil {
		errs = append(errs, fmt.Sprintf("simulation.abilities: %s", strings.ReplaceAll(err.Error(), "\n", ", ")))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.File.Enabled {
		return validateLogFile(l.File)
	}
	return nil
}

func validateLogFile(f FileLogConfig) error {
	var errs []string
	if f.Path == "" {
		errs = append(errs, "logging.file.path must not be empty when file logging is enabled")
	}
	if f.MaxSizeMB < 1 {
		errs = append(errs, fmt.Sprintf("logging.file.max_size_mb must be >= 1, got %d", f.MaxSizeMB))
	}
	if f.MaxBackups < 0 {
		errs = append(errs, fmt.Sprintf("logging.file.max_backups must be >= 0, got %d", f.MaxBackups))
	}
	if f.MaxAgeDays < 0 {
		errs = append(errs, fmt.Sprintf("logging.file.max_age_days must be >= 0, got %d", f.MaxAgeDays))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	return LoadWith(path, nil)
}

// LoadWith is Load with explicit overrides, keyed like "simulation.seed",
// applied above the file, the environment, and the defaults.
func LoadWith(path string, overrides map[string]any) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	for k, val := range overrides {
		v.Set(k, val)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and LANCE_ environment
// overrides applied. Callers may bind flags to it before LoadFromViper.
func NewViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with LANCE_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.width", 50)
	v.SetDefault("simulation.height", 50)
	v.SetDefault("simulation.tile_size", 32.0)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.tick_rate", 60)
	v.SetDefault("simulation.max_ticks", 0)
	v.SetDefault("simulation.spawn_attempts", world.DefaultSpawnAttempts)
	v.SetDefault("simulation.player_name", "Hero")
	v.SetDefault("simulation.viewport_width", 800.0)
	v.SetDefault("simulation.viewport_height", 600.0)
	def := character.DefaultAbilities()
	v.SetDefault("simulation.abilities.strength", def.Strength)
	v.SetDefault("simulation.abilities.dexterity", def.Dexterity)
	v.SetDefault("simulation.abilities.constitution", def.Constitution)
	v.SetDefault("simulation.abilities.intelligence", def.Intelligence)
	v.SetDefault("simulation.abilities.wisdom", def.Wisdom)
	v.SetDefault("simulation.abilities.charisma", def.Charisma)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "logs/lance.log")
	v.SetDefault("logging.file.max_size_mb", 10)
	v.SetDefault("logging.file.max_backups", 5)
	v.SetDefault("logging.file.max_age_days", 30)
	v.SetDefault("logging.file.compress", false)
}
