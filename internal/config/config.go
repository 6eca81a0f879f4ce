// Package config provides YAML-based game configuration loading and
// difficulty presets for tui-tetris.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Grid        GridConfig       `yaml:"grid"`
	Timing      TimingConfig     `yaml:"timing"`
	Difficulty  DifficultyPreset `yaml:"difficulty"`
	StartLayout []string         `yaml:"start_layout"`
}

// GridConfig defines the playfield size.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines gravity and its progression.
type TimingConfig struct {
	FallFrequency   float64 `yaml:"fall_frequency"`     // Rows per second
	SpeedUpEverySec float64 `yaml:"speed_up_every_sec"` // 0 disables speed-ups
	SpeedUpAmount   float64 `yaml:"speed_up_amount"`
}

// MinFallFrequency is the slowest gravity a config may ask for: one row
// every 100 seconds.
const MinFallFrequency = 0.01

// EngineTiming converts the YAML timing into engine timing.
func (t TimingConfig) EngineTiming() core.Timing {
	return core.Timing{
		FallFrequency: t.FallFrequency,
		SpeedUpEvery:  secondsToDuration(t.SpeedUpEverySec),
		SpeedUpAmount: t.SpeedUpAmount,
	}
}

// secondsToDuration saturates at the largest Duration instead of wrapping.
func secondsToDuration(sec float64) time.Duration {
	ns := sec * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// Layout parses StartLayout for the configured grid width.
func (c TetrisConfig) Layout() ([][]core.Shape, error) {
	if len(c.StartLayout) == 0 {
		return nil, nil
	}
	return core.ParseLayout(c.StartLayout, c.Grid.Cols)
}

// EngineOptions returns the engine options this config describes.
func (c TetrisConfig) EngineOptions() ([]core.Option, error) {
	layout, err := c.Layout()
	if err != nil {
		return nil, err
	}
	opts := []core.Option{core.WithTiming(c.Timing.EngineTiming())}
	if layout != nil {
		opts = append(opts, core.WithStartLayout(layout))
	}
	return opts, nil
}

// Validate checks the config for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Grid.Rows < core.MinRows || c.Grid.Cols < core.MinCols {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols, core.MinRows, core.MinCols)
	}
	if !(c.Timing.FallFrequency >= MinFallFrequency) {
		return fmt.Errorf("%w: fall_frequency must be at least %g, got %g",
			ErrInvalidConfig, MinFallFrequency, c.Timing.FallFrequency)
	}
	if !(c.Timing.SpeedUpEverySec >= 0) || !(c.Timing.SpeedUpAmount >= 0) {
		return fmt.Errorf("%w: speed-up settings must not be negative", ErrInvalidConfig)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	if len(c.StartLayout) > c.Grid.Rows {
		return fmt.Errorf("%w: start_layout has %d rows, grid has %d", ErrInvalidConfig, len(c.StartLayout), c.Grid.Rows)
	}
	if _, err := c.Layout(); err != nil {
		return fmt.Errorf("%w: start_layout: %w", ErrInvalidConfig, err)
	}
	return nil
}
