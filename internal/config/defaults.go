package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 20x10 grid
// starting at one row every two seconds, 0.2 rows/s faster every 30 seconds.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: GridConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			FallFrequency:   0.5,
			SpeedUpEverySec: 30,
			SpeedUpAmount:   0.2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
