package core

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Timing controls gravity. Fall frequency is in rows per second.
type Timing struct {
	FallFrequency float64       // Starting fall frequency
	SpeedUpEvery  time.Duration // Interval between speed-ups, 0 disables them
	SpeedUpAmount float64       // Added to the fall frequency on each speed-up
}

// DefaultTiming returns the classic timing: one row every two seconds,
// 0.2 rows/s faster every 30 seconds.
func DefaultTiming() Timing {
	return Timing{
		FallFrequency: 0.5,
		SpeedUpEvery:  30 * time.Second,
		SpeedUpAmount: 0.2,
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed seeds the shape generator for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithTiming overrides the gravity timing.
func WithTiming(t Timing) Option {
	return func(e *Engine) {
		e.timing = t
	}
}

// WithStartLayout pre-fills the bottom of the grid on every new game.
// Rows come from ParseLayout.
func WithStartLayout(layout [][]Shape) Option {
	return func(e *Engine) {
		e.startLayout = layout
	}
}

// Engine owns the playfield and runs the game.
// It is not safe for concurrent use; readers should work from Snapshot copies.
type Engine struct {
	grid *Grid

	phase          Phase
	currentPieceID int
	currentShape   Shape
	nextShape      Shape
	center         Center

	rowsCleared int
	holes       int
	maxHeight   int

	timing        Timing
	fallFrequency float64
	fallStart     time.Time
	speedStart    time.Time
	paused        bool
	pausedAt      time.Time

	startLayout [][]Shape

	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
}

// New creates an engine with an empty rows×cols grid in the NotStarted phase.
func New(rows, cols int, opts ...Option) (*Engine, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrGridTooSmall, rows, cols, MinRows, MinCols)
	}

	e := &Engine{
		grid:           NewGrid(rows, cols),
		phase:          PhaseNotStarted,
		currentPieceID: PieceIDEmpty,
		currentShape:   ShapeEmpty,
		nextShape:      ShapeEmpty,
		timing:         DefaultTiming(),
		now:            time.Now,
		logger:         log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.now().UnixNano()))
	}
	if len(e.startLayout) > rows {
		return nil, fmt.Errorf("%w: %d layout rows on a %d-row grid", ErrBadLayout, len(e.startLayout), rows)
	}
	for i, row := range e.startLayout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: layout row %d has %d columns, grid has %d", ErrBadLayout, i, len(row), cols)
		}
	}
	e.fallFrequency = e.timing.FallFrequency
	return e, nil
}

// SetupNewGame resets the grid and counters and spawns the first piece.
// It is the only way into the Running phase and works from any phase.
func (e *Engine) SetupNewGame() {
	e.grid.Reset()
	e.applyStartLayout()

	e.phase = PhaseRunning
	e.rowsCleared = 0
	e.holes = e.countHoles()
	e.maxHeight = e.measureMaxHeight()
	e.fallFrequency = e.timing.FallFrequency
	e.paused = false

	now := e.now()
	e.fallStart = now
	e.speedStart = now

	e.currentPieceID = 1
	e.currentShape = e.randomShape()
	e.nextShape = e.randomShape()

	e.logger.Info("new game", "rows", e.grid.Rows(), "cols", e.grid.Cols(), "shape", e.currentShape)

	if !e.canNewPieceBePlaced() {
		e.endGame()
		return
	}
	e.placeNewCurrentPiece()
}

// Handle applies a command. Commands other than CmdStart are ignored unless
// the game is running and unpaused. It reports whether anything changed.
func (e *Engine) Handle(cmd Command) bool {
	if cmd == CmdStart {
		e.SetupNewGame()
		return true
	}
	if !e.acceptsInput() {
		return false
	}

	switch cmd {
	case CmdMoveLeft:
		return e.MoveLeft()
	case CmdMoveRight:
		return e.MoveRight()
	case CmdSoftDrop:
		return e.SoftDrop()
	case CmdHardDrop:
		return e.HardDrop()
	case CmdRotate:
		return e.RotateClockwise()
	default:
		return false
	}
}

func (e *Engine) acceptsInput() bool {
	return e.phase == PhaseRunning && !e.paused
}

func (e *Engine) randomShape() Shape {
	return Shape(e.rng.Intn(NumShapes))
}

func (e *Engine) endGame() {
	e.phase = PhaseGameOver
	e.logger.Info("game over",
		"pieces", e.currentPieceID-1,
		"rows_cleared", e.rowsCleared,
		"max_height", e.maxHeight,
	)
}

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.grid.Rows() }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.grid.Cols() }

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Running reports whether a game is in progress.
func (e *Engine) Running() bool { return e.phase == PhaseRunning }

// Paused reports whether gravity and input are suspended.
func (e *Engine) Paused() bool { return e.paused }

// CurrentPieceID returns the id of the falling piece.
func (e *Engine) CurrentPieceID() int { return e.currentPieceID }

// CurrentShape returns the shape of the falling piece.
func (e *Engine) CurrentShape() Shape { return e.currentShape }

// NextShape returns the shape that spawns after the current piece locks.
func (e *Engine) NextShape() Shape { return e.nextShape }

// RotationCenter returns the falling piece's pivot.
func (e *Engine) RotationCenter() Center { return e.center }

// RowsCleared returns the number of rows cleared this game.
func (e *Engine) RowsCleared() int { return e.rowsCleared }

// Holes returns the hole count measured at the last lock.
func (e *Engine) Holes() int { return e.holes }

// MaxHeight returns the stack height measured at the last lock.
func (e *Engine) MaxHeight() int { return e.maxHeight }

// FallFrequency returns the current gravity in rows per second.
func (e *Engine) FallFrequency() float64 { return e.fallFrequency }

// Square returns a copy of the square at (row, col).
func (e *Engine) Square(row, col int) Square {
	return e.grid.At(Cell{Row: row, Col: col})
}

// CurrentCells returns the falling piece's squares in row-major order.
func (e *Engine) CurrentCells() []Cell {
	if e.currentPieceID == PieceIDEmpty {
		return nil
	}
	return e.grid.Cells(e.currentPieceID)
}

// DebugString renders the grid as shape ids, one row per line, with '.'
// for empty squares.
func (e *Engine) DebugString() string {
	var b strings.Builder
	for row := range e.grid.Rows() {
		for col := range e.grid.Cols() {
			sq := e.grid.At(Cell{Row: row, Col: col})
			if sq.Empty {
				b.WriteByte('.')
				continue
			}
			fmt.Fprintf(&b, "%d", int(sq.Shape))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
