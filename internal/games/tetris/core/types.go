// Package core provides the playfield simulation for the Tetris game.
// This package is UI-agnostic: presentation layers issue Commands and read
// Snapshots, and nothing here draws, blocks or spawns goroutines.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors reported through the engine logger.
var (
	ErrInvalidShape     = errors.New("tetris: invalid shape id")
	ErrRotationOverflow = errors.New("tetris: rotation overflows both sides")
	ErrGridTooSmall     = errors.New("tetris: grid too small")
	ErrBadLayout        = errors.New("tetris: bad layout")
)

// Grid size limits. Spawn coordinates need at least this much room.
const (
	MinRows = 4
	MinCols = 6
)

// Cell is an integer grid coordinate. Row 0 is the top, Col 0 the left edge.
type Cell struct {
	Row int
	Col int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell offset by (dRow, dCol).
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Center is a rotation pivot. It can sit on a cell boundary (x.5) for pieces
// whose true pivot lies between cells.
type Center struct {
	Row float64
	Col float64
}

// Add returns the center offset by whole cells.
func (c Center) Add(dRow, dCol int) Center {
	return Center{Row: c.Row + float64(dRow), Col: c.Col + float64(dCol)}
}

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a discrete request from the input layer.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotate
	CmdStart // Start or restart
	CmdQuit  // Handled by the presentation layer
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdHardDrop:
		return "hard_drop"
	case CmdRotate:
		return "rotate"
	case CmdStart:
		return "start"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}
