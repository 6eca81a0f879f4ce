package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape int

// Shape ids. The order is part of the catalog and must not change.
const (
	ShapeL Shape = iota
	ShapeJ
	ShapeS
	ShapeZ
	ShapeT
	ShapeI
	ShapeO
	ShapeEmpty   // Sentinel for unoccupied squares and "no piece yet"
	ShapeGarbage // Pre-filled start layout squares; never spawned
)

// NumShapes is the number of real shapes; random draws are in [0, NumShapes).
const NumShapes = 7

// catalogCols is the grid width the spawn coordinates are written for.
const catalogCols = 10

// ShapeInfo is the static description of one shape.
type ShapeInfo struct {
	Name   string
	Letter rune
	Spawn  [4]Cell // Absolute spawn squares on a 10-wide grid
	Center Center  // Default rotation center on a 10-wide grid
	Color  platformcore.Color
}

var catalog = [NumShapes]ShapeInfo{
	ShapeL: {
		Name:   "L",
		Letter: 'L',
		Spawn:  [4]Cell{{0, 4}, {1, 4}, {2, 4}, {2, 5}},
		Center: Center{1, 4},
		Color:  platformcore.ColorOrange,
	},
	ShapeJ: {
		Name:   "J",
		Letter: 'J',
		Spawn:  [4]Cell{{0, 4}, {1, 4}, {2, 4}, {2, 3}},
		Center: Center{1, 4},
		Color:  platformcore.ColorBlue,
	},
	ShapeS: {
		Name:   "S",
		Letter: 'S',
		Spawn:  [4]Cell{{0, 4}, {0, 5}, {1, 3}, {1, 4}},
		Center: Center{1, 4},
		Color:  platformcore.ColorGreen,
	},
	ShapeZ: {
		Name:   "Z",
		Letter: 'Z',
		Spawn:  [4]Cell{{0, 3}, {0, 4}, {1, 4}, {1, 5}},
		Center: Center{1, 4},
		Color:  platformcore.ColorRed,
	},
	ShapeT: {
		Name:   "T",
		Letter: 'T',
		Spawn:  [4]Cell{{1, 3}, {1, 4}, {1, 5}, {0, 4}},
		Center: Center{1, 4},
		Color:  platformcore.ColorMagenta,
	},
	ShapeI: {
		Name:   "I",
		Letter: 'I',
		Spawn:  [4]Cell{{1, 3}, {1, 4}, {1, 5}, {1, 6}},
		Center: Center{1.5, 4.5},
		Color:  platformcore.ColorCyan,
	},
	ShapeO: {
		Name:   "O",
		Letter: 'O',
		Spawn:  [4]Cell{{0, 4}, {1, 4}, {0, 5}, {1, 5}},
		Center: Center{0.5, 4.5},
		Color:  platformcore.ColorYellow,
	},
}

// Valid reports whether s is one of the seven real shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < NumShapes
}

// String returns the shape's name.
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeGarbage:
		return "garbage"
	}
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return catalog[s].Name
}

// LookupShape returns the catalog entry for s.
func LookupShape(s Shape) (ShapeInfo, error) {
	if !s.Valid() {
		return ShapeInfo{}, fmt.Errorf("%w: %d", ErrInvalidShape, int(s))
	}
	return catalog[s], nil
}

// SpawnCells returns the spawn squares of s on a grid cols wide.
// Pieces are shifted so they spawn centered on grids other than 10 wide.
func SpawnCells(s Shape, cols int) ([4]Cell, error) {
	info, err := LookupShape(s)
	if err != nil {
		return [4]Cell{}, err
	}
	offset := spawnOffset(cols)
	var cells [4]Cell
	for i, c := range info.Spawn {
		cells[i] = c.Add(0, offset)
	}
	return cells, nil
}

// DefaultCenter returns the rotation center of s at spawn on a grid cols wide.
func DefaultCenter(s Shape, cols int) (Center, error) {
	info, err := LookupShape(s)
	if err != nil {
		return Center{}, err
	}
	return info.Center.Add(0, spawnOffset(cols)), nil
}

// ShapeColor returns the display color of s. Empty and unknown shapes are dim.
func ShapeColor(s Shape) platformcore.Color {
	if s == ShapeGarbage {
		return platformcore.ColorGray
	}
	if !s.Valid() {
		return platformcore.ColorDim
	}
	return catalog[s].Color
}

// ShapeFromLetter maps a catalog letter (case-insensitive) to its shape.
func ShapeFromLetter(r rune) (Shape, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	for i, info := range catalog {
		if info.Letter == r {
			return Shape(i), true
		}
	}
	return ShapeEmpty, false
}

func spawnOffset(cols int) int {
	return (cols - catalogCols) / 2
}
