package core

import (
	"fmt"
	"strings"
)

// ParseLayout turns text rows into a start layout cols wide. '.' or ' ' is
// empty, '#' is garbage, and a catalog letter (L J S Z T I O) is a settled
// square of that shape. The last row lands on the floor.
func ParseLayout(lines []string, cols int) ([][]Shape, error) {
	layout := make([][]Shape, 0, len(lines))
	for i, line := range lines {
		runes := []rune(strings.TrimRight(line, "\r\n"))
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d is %d wide, want %d", ErrBadLayout, i, len(runes), cols)
		}
		row := make([]Shape, cols)
		for col, r := range runes {
			switch r {
			case '.', ' ':
				row[col] = ShapeEmpty
			case '#':
				row[col] = ShapeGarbage
			default:
				s, ok := ShapeFromLetter(r)
				if !ok {
					return nil, fmt.Errorf("%w: row %d col %d: unexpected %q", ErrBadLayout, i, col, r)
				}
				row[col] = s
			}
		}
		layout = append(layout, row)
	}
	return layout, nil
}

// LoadLayout parses lines and uses them as the start layout for every
// following SetupNewGame. An empty slice removes the layout.
func (e *Engine) LoadLayout(lines []string) error {
	if len(lines) > e.grid.Rows() {
		return fmt.Errorf("%w: %d layout rows on a %d-row grid", ErrBadLayout, len(lines), e.grid.Rows())
	}
	layout, err := ParseLayout(lines, e.grid.Cols())
	if err != nil {
		return err
	}
	e.startLayout = layout
	return nil
}

// applyStartLayout writes the start layout onto the bottom rows. Layout
// squares belong to no live piece.
func (e *Engine) applyStartLayout() {
	top := e.grid.Rows() - len(e.startLayout)
	for i, row := range e.startLayout {
		for col, s := range row {
			if s == ShapeEmpty {
				continue
			}
			e.grid.Occupy(Cell{Row: top + i, Col: col}, PieceIDGarbage, s)
		}
	}
}
