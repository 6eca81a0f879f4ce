package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// Presets lists the named presets in increasing order of challenge.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// Valid reports whether p is a known preset or empty.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(s)
	if !p.Valid() {
		return DifficultyDefault, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// FallFrequencyForPreset returns the starting fall frequency for a preset,
// or 0 if the preset leaves it alone.
func FallFrequencyForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyNormal:
		return 1.0
	case DifficultyHard:
		return 2.0
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the starting speed and disables speed-ups.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if preset == DifficultyFixed {
		cfg.Timing.SpeedUpEverySec = 0
		return
	}
	if f := FallFrequencyForPreset(preset); f > 0 {
		cfg.Timing.FallFrequency = f
	}
}
