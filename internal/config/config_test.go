package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultTetrisConfig()
	if cfg.Grid != want.Grid {
		t.Errorf("grid: got %+v, want %+v", cfg.Grid, want.Grid)
	}
	if cfg.Timing != want.Timing {
		t.Errorf("timing: got %+v, want %+v", cfg.Timing, want.Timing)
	}
	if cfg.Difficulty != DifficultyDefault {
		t.Errorf("difficulty: got %q, want empty", cfg.Difficulty)
	}
	if len(cfg.StartLayout) != 0 {
		t.Errorf("start_layout: got %d rows, want none", len(cfg.StartLayout))
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != 20 || cfg.Grid.Cols != 10 {
		t.Errorf("expected 20x10 grid, got %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Timing.FallFrequency != 0.5 {
		t.Errorf("expected fall_frequency 0.5, got %g", cfg.Timing.FallFrequency)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "tetris.yaml"), []byte("grid: {rows: 16, cols: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != 16 {
		t.Errorf("local config: expected 16 rows, got %d", cfg.Grid.Rows)
	}

	userDir := filepath.Join(dir, ".tui-tetris", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "tetris.yaml"), []byte("grid: {rows: 18, cols: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != 18 {
		t.Errorf("user config should win over local: expected 18 rows, got %d", cfg.Grid.Rows)
	}
}

func TestLoadCustomPathKeepsUnsetDefaults(t *testing.T) {
	path := writeConfig(t, "grid:\n  cols: 12\nstart_layout:\n  - \"#....#....#.\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != 20 || cfg.Grid.Cols != 12 {
		t.Errorf("expected 20x12, got %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Timing.SpeedUpAmount != 0.2 {
		t.Errorf("expected default speed_up_amount, got %g", cfg.Timing.SpeedUpAmount)
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if len(layout) != 1 || len(layout[0]) != 12 {
		t.Errorf("unexpected layout shape %v", layout)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := Load(writeConfig(t, "grid: [not, a, map]\n")); err == nil {
		t.Error("expected error for malformed yaml")
	}

	_, err := Load(writeConfig(t, "grid: {rows: 2, cols: 10}\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadAppliesDifficulty(t *testing.T) {
	cfg, err := Load(writeConfig(t, "difficulty: hard\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timing.FallFrequency != 2.0 {
		t.Errorf("expected hard preset to start at 2 Hz, got %g", cfg.Timing.FallFrequency)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"default", func(*TetrisConfig) {}, true},
		{"smallest grid", func(c *TetrisConfig) { c.Grid = GridConfig{Rows: 4, Cols: 6} }, true},
		{"too few rows", func(c *TetrisConfig) { c.Grid.Rows = 3 }, false},
		{"too few cols", func(c *TetrisConfig) { c.Grid.Cols = 5 }, false},
		{"zero frequency", func(c *TetrisConfig) { c.Timing.FallFrequency = 0 }, false},
		{"tiny frequency", func(c *TetrisConfig) { c.Timing.FallFrequency = 1e-10 }, false},
		{"nan frequency", func(c *TetrisConfig) { c.Timing.FallFrequency = math.NaN() }, false},
		{"slowest frequency", func(c *TetrisConfig) { c.Timing.FallFrequency = MinFallFrequency }, true},
		{"negative speed-up", func(c *TetrisConfig) { c.Timing.SpeedUpAmount = -1 }, false},
		{"unknown difficulty", func(c *TetrisConfig) { c.Difficulty = "insane" }, false},
		{"layout too wide", func(c *TetrisConfig) { c.StartLayout = []string{"###########"} }, false},
		{"layout bad rune", func(c *TetrisConfig) { c.StartLayout = []string{"####?#####"} }, false},
		{"layout too tall", func(c *TetrisConfig) {
			c.Grid = GridConfig{Rows: 4, Cols: 6}
			c.StartLayout = []string{"#.....", "#.....", "#.....", "#.....", "#....."}
		}, false},
		{"layout ok", func(c *TetrisConfig) { c.StartLayout = []string{"##.##.##.#"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		frequency float64
		speedUp   float64
	}{
		{DifficultyDefault, 0.5, 30},
		{DifficultyEasy, 0.5, 30},
		{DifficultyNormal, 1.0, 30},
		{DifficultyHard, 2.0, 30},
		{DifficultyFixed, 0.5, 0},
	}

	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Timing.FallFrequency != tt.frequency {
			t.Errorf("%q: expected frequency %g, got %g", tt.preset, tt.frequency, cfg.Timing.FallFrequency)
		}
		if cfg.Timing.SpeedUpEverySec != tt.speedUp {
			t.Errorf("%q: expected speed-up every %g, got %g", tt.preset, tt.speedUp, cfg.Timing.SpeedUpEverySec)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, p := range Presets {
		got, err := ParseDifficulty(string(p))
		if err != nil || got != p {
			t.Errorf("ParseDifficulty(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestEngineTiming(t *testing.T) {
	timing := DefaultTetrisConfig().Timing.EngineTiming()
	if timing.SpeedUpEvery != 30*time.Second {
		t.Errorf("expected 30s, got %v", timing.SpeedUpEvery)
	}
	if timing.FallFrequency != 0.5 || timing.SpeedUpAmount != 0.2 {
		t.Errorf("unexpected timing %+v", timing)
	}
}

func TestEngineTimingSaturatesLongSpeedUp(t *testing.T) {
	timing := TimingConfig{FallFrequency: 1, SpeedUpEverySec: 1e12}.EngineTiming()
	if timing.SpeedUpEvery != time.Duration(math.MaxInt64) {
		t.Errorf("expected saturated interval, got %v", timing.SpeedUpEvery)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyNormal)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Difficulty != DifficultyNormal || got.Timing.FallFrequency != 1.0 {
		t.Errorf("unexpected round trip %+v", got)
	}
}
