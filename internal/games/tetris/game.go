// Package tetris adapts the playfield engine to the terminal platform:
// it maps platform actions to engine commands and draws the board, the
// next-piece preview and the HUD into a Screen.
package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger handed to every engine the game creates.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock replaces the engine clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game implements the falling-block game for the terminal platform.
type Game struct {
	cfg     config.TetrisConfig
	engOpts []core.Option
	engine  *core.Engine
	logger  *log.Logger
	now     func() time.Time
}

// New creates a game from a validated configuration.
func New(cfg config.TetrisConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engOpts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		engOpts: engOpts,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	engine, err := g.newEngine(0)
	if err != nil {
		return nil, err
	}
	g.engine = engine
	return g, nil
}

func (g *Game) newEngine(seed int64) (*core.Engine, error) {
	opts := append([]core.Option{}, g.engOpts...)
	opts = append(opts, core.WithLogger(g.logger))
	if g.now != nil {
		opts = append(opts, core.WithClock(g.now))
	}
	if seed != 0 {
		opts = append(opts, core.WithSeed(seed))
	}
	engine, err := core.New(g.cfg.Grid.Rows, g.cfg.Grid.Cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return engine, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset replaces the engine with a fresh one in the NotStarted phase.
// The seed fixes the piece sequence of every game this engine plays.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	engine, err := g.newEngine(cfg.Seed)
	if err != nil {
		g.logger.Error("reset failed, keeping current engine", "err", err)
		return
	}
	g.engine = engine
}

// Step applies this tick's actions in arrival order, then advances gravity.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}
	g.engine.UpdateTimers()
	return platformcore.StepResult{State: g.State()}
}

func (g *Game) apply(a platformcore.Action) {
	switch a {
	case platformcore.ActionPause:
		g.engine.SetPaused(!g.engine.Paused())
	case platformcore.ActionStart:
		// A running game is only restarted from the game-over screen.
		if !g.engine.Running() {
			g.engine.Handle(core.CmdStart)
		}
	default:
		if cmd := CommandFor(a); cmd != core.CmdNone {
			g.engine.Handle(cmd)
		}
	}
}

// CommandFor maps a platform action to an engine command.
func CommandFor(a platformcore.Action) core.Command {
	switch a {
	case platformcore.ActionLeft:
		return core.CmdMoveLeft
	case platformcore.ActionRight:
		return core.CmdMoveRight
	case platformcore.ActionSoftDrop:
		return core.CmdSoftDrop
	case platformcore.ActionHardDrop:
		return core.CmdHardDrop
	case platformcore.ActionRotate:
		return core.CmdRotate
	case platformcore.ActionStart:
		return core.CmdStart
	case platformcore.ActionQuit:
		return core.CmdQuit
	default:
		return core.CmdNone
	}
}

// State returns the current game state. Score is the number of rows cleared.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.engine.RowsCleared(),
		Started:  g.engine.Phase() != core.PhaseNotStarted,
		GameOver: g.engine.Phase() == core.PhaseGameOver,
		Paused:   g.engine.Paused(),
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() core.Snapshot {
	return g.engine.Snapshot()
}

// Engine exposes the underlying engine to frontends that draw it directly.
func (g *Game) Engine() *core.Engine {
	return g.engine
}
