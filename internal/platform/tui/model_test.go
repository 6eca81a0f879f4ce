package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets int
	titles int
	steps  []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { g.titles++; return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub board") }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	actions := append([]core.Action(nil), in.Actions...)
	g.steps = append(g.steps, core.InputFrame{Actions: actions})
	return core.StepResult{State: g.state}
}

func newTestModel(game *stubGame) Model {
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	return m
}

func TestModelInitResetsGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	if game.resets != 1 {
		t.Errorf("expected one reset, got %d", game.resets)
	}
	if game.titles != 1 {
		t.Errorf("expected the title to be read once, got %d", game.titles)
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); !ok || len(batch) != 2 {
		t.Errorf("expected window title and tick commands, got %T", msg)
	}
}

func TestModelCollectsKeysUntilTick(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, cmd := model.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	model, _ = model.Update(TickMsg(time.Now()))

	if len(game.steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.steps))
	}
	got := game.steps[0].Actions
	if len(got) != 2 || got[0] != core.ActionLeft || got[1] != core.ActionRotate {
		t.Errorf("expected [Left Rotate], got %v", got)
	}
	if len(game.steps[1].Actions) != 0 {
		t.Errorf("frame should be cleared after a tick, got %v", game.steps[1].Actions)
	}
	_ = model
}

func TestModelQuit(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if model.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelStateFromTick(t *testing.T) {
	game := &stubGame{state: core.GameState{Score: 7, Started: true}}
	m := newTestModel(game)

	model, _ := m.Update(TickMsg(time.Now()))

	if got := model.(Model).State(); got.Score != 7 || !got.Started {
		t.Errorf("unexpected state %+v", got)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)
	m.Init()

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets=%d", game.resets)
	}
	mm := model.(Model)
	if mm.screen.Width() != 100 || mm.screen.Height() != 30-helpHeight {
		t.Errorf("expected screen 100x%d, got %dx%d", 30-helpHeight, mm.screen.Width(), mm.screen.Height())
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game)

	view := ansi.Strip(m.View())

	if !strings.Contains(view, "stub board") {
		t.Error("game screen missing from view")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("help footer missing from view")
	}
}

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	screen := core.NewScreen(20, 2)
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	path, err := SaveScreenshot(dir, &stubGame{}, screen, now)
	if err != nil {
		t.Fatalf("SaveScreenshot failed: %v", err)
	}
	if filepath.Base(path) != "stub_20240305_143000.txt" {
		t.Errorf("unexpected file name %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub board") {
		t.Errorf("unexpected screenshot contents %q", data)
	}
}
