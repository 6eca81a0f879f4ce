package core

// Grid is the fixed-size playfield. Squares are stored row-major.
type Grid struct {
	rows    int
	cols    int
	squares [][]Square
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.Reset()
	return g
}

// Reset reinitializes every square to empty with no owner.
func (g *Grid) Reset() {
	g.squares = make([][]Square, g.rows)
	for row := range g.squares {
		g.squares[row] = make([]Square, g.cols)
		for col := range g.squares[row] {
			g.squares[row][col] = NewSquare(row, col)
		}
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the square at c. Out-of-bounds cells read as empty.
func (g *Grid) At(c Cell) Square {
	if !g.InBounds(c) {
		return NewSquare(c.Row, c.Col)
	}
	return g.squares[c.Row][c.Col]
}

// Occupy marks c as owned by the given piece. Out-of-bounds cells are ignored.
func (g *Grid) Occupy(c Cell, pieceID int, shape Shape) {
	if g.InBounds(c) {
		g.squares[c.Row][c.Col].Occupy(pieceID, shape)
	}
}

// ClearCell empties c. Out-of-bounds cells are ignored.
func (g *Grid) ClearCell(c Cell) {
	if g.InBounds(c) {
		g.squares[c.Row][c.Col].Clear()
	}
}

// move transfers the contents of from to to and empties from.
func (g *Grid) move(from, to Cell) {
	g.squares[to.Row][to.Col].copyContents(g.squares[from.Row][from.Col])
	g.squares[from.Row][from.Col].Clear()
}

// rowStatus reports whether a row has no occupied squares and whether it
// has no empty squares.
func (g *Grid) rowStatus(row int) (empty, full bool) {
	empty, full = true, true
	for _, sq := range g.squares[row] {
		if sq.Empty {
			full = false
		} else {
			empty = false
		}
	}
	return empty, full
}

// collapseRow removes row by shifting everything above it down one and
// emptying the top row.
func (g *Grid) collapseRow(row int) {
	for r := row; r > 0; r-- {
		for c := range g.cols {
			g.squares[r][c].copyContents(g.squares[r-1][c])
		}
	}
	for c := range g.cols {
		g.squares[0][c].Clear()
	}
}

// CountOccupied returns the number of non-empty squares.
func (g *Grid) CountOccupied() int {
	n := 0
	for _, row := range g.squares {
		for _, sq := range row {
			if !sq.Empty {
				n++
			}
		}
	}
	return n
}

// Cells returns the coordinates owned by pieceID in row-major order.
func (g *Grid) Cells(pieceID int) []Cell {
	var cells []Cell
	for _, row := range g.squares {
		for _, sq := range row {
			if sq.OwnedBy(pieceID) {
				cells = append(cells, Cell{Row: sq.Row, Col: sq.Col})
			}
		}
	}
	return cells
}

// Copy returns a deep copy of the squares, safe to hand to renderers.
func (g *Grid) Copy() [][]Square {
	out := make([][]Square, g.rows)
	for row := range g.squares {
		out[row] = make([]Square, g.cols)
		copy(out[row], g.squares[row])
	}
	return out
}
