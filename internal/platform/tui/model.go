package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the model drives. Games contain pure logic with no Bubble Tea
// dependency; the model handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a short identifier, used in screenshot file names.
	ID() string

	// Title returns a human-readable name, used as the terminal window title.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one host tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// helpHeight is the number of lines reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	notice        string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init initializes the model, titles the terminal and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := SaveScreenshot(m.screenshotDir, m.game, m.screen, time.Now())
		if err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "saved " + path
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// it lays itself out against whatever screen it is given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the keys collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer += "  " + noticeStyle.Render(m.notice)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tui-tetris-screenshots")
	}
	return filepath.Join(home, ".tui-tetris", "screenshots")
}

// SaveScreenshot renders the game into s and writes it as plain text to dir.
// Returns the path of the written file.
func SaveScreenshot(dir string, game Game, s *core.Screen, now time.Time) (string, error) {
	game.Render(s)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts ...tea.ProgramOption) error {
	model := NewModel(game, cfg)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	return err
}
