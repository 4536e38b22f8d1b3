// Package config holds the window and simulation settings of the sandbox.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"polyfall/physics"
)

// Environment variables read by Load
const (
	EnvScreenWidth  = "POLYFALL_SCREEN_WIDTH"
	EnvScreenHeight = "POLYFALL_SCREEN_HEIGHT"
	EnvTitle        = "POLYFALL_TITLE"
	EnvTickMillis   = "POLYFALL_TICK_MS"
	EnvGravity      = "POLYFALL_GRAVITY"
	EnvCullY        = "POLYFALL_CULL_Y"
)

// defaultEnvFile is loaded when present and no file is named
const defaultEnvFile = ".env"

// Config holds application configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// TickInterval is the wall time between simulation steps
	TickInterval time.Duration

	// Gravity is the downward acceleration in pixels per tick squared
	Gravity float64

	// CullY is the line below which shapes stop being simulated
	CullY float64

	// Background is the frame clear color
	Background color.NRGBA
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	p := physics.DefaultConfig()
	return Config{
		ScreenWidth:  1000,
		ScreenHeight: 1000,
		Title:        "Polyfall",
		TickInterval: 20 * time.Millisecond,
		Gravity:      p.Gravity,
		CullY:        p.CullY,
		Background:   color.NRGBA{A: 255},
	}
}

// Load reads the given dotenv files (or ./.env when it exists) into the
// environment and applies the POLYFALL_* overrides on top of the defaults.
// Variables already set in the environment win over dotenv values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			files = []string{defaultEnvFile}
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("failed to load env files %v: %w", files, err)
		}
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if err := envInt(EnvScreenWidth, &c.ScreenWidth); err != nil {
		return err
	}
	if err := envInt(EnvScreenHeight, &c.ScreenHeight); err != nil {
		return err
	}
	if v := os.Getenv(EnvTitle); v != "" {
		c.Title = v
	}

	var ms int
	if err := envInt(EnvTickMillis, &ms); err != nil {
		return err
	}
	if ms != 0 {
		c.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if err := envFloat(EnvGravity, &c.Gravity); err != nil {
		return err
	}
	return envFloat(EnvCullY, &c.CullY)
}

// Validate reports settings the host cannot run with
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	return nil
}

// Physics returns the simulation part of the configuration
func (c Config) Physics() physics.Config {
	return physics.Config{
		Gravity: c.Gravity,
		CullY:   c.CullY,
	}
}

// TPS returns the number of simulation steps per second
func (c Config) TPS() int {
	tps := int(time.Second / c.TickInterval)
	if tps < 1 {
		return 1
	}
	return tps
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	*dst = f
	return nil
}
