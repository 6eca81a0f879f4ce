package core

// CanMoveDown reports whether every square of the falling piece has room
// directly below it: not on the floor and not resting on another piece.
func (e *Engine) CanMoveDown() bool {
	return e.canShift(1, 0)
}

// CanMoveLeft reports whether the falling piece can shift one column left.
func (e *Engine) CanMoveLeft() bool {
	return e.canShift(0, -1)
}

// CanMoveRight reports whether the falling piece can shift one column right.
func (e *Engine) CanMoveRight() bool {
	return e.canShift(0, 1)
}

// canShift checks the neighbor of each piece square in one direction.
// A piece with no squares on the grid cannot move.
func (e *Engine) canShift(dRow, dCol int) bool {
	cells := e.CurrentCells()
	if len(cells) == 0 {
		return false
	}
	return e.fits(cells, dRow, dCol)
}

// moveOneDown relocates the falling piece one row down without checking.
// Rows are processed bottom-up so no fragment lands on one not yet moved.
// Callers must check CanMoveDown first.
func (e *Engine) moveOneDown() {
	for row := e.grid.Rows() - 2; row >= 0; row-- {
		for col := e.grid.Cols() - 1; col >= 0; col-- {
			from := Cell{Row: row, Col: col}
			if e.grid.At(from).OwnedBy(e.currentPieceID) {
				e.grid.move(from, from.Add(1, 0))
			}
		}
	}
	e.center = e.center.Add(1, 0)
}

// SoftDrop moves the falling piece one row down if nothing is in the way.
// It never locks the piece; gravity does that.
func (e *Engine) SoftDrop() bool {
	if !e.acceptsInput() || !e.CanMoveDown() {
		return false
	}
	e.moveOneDown()
	return true
}

// MoveLeft shifts the falling piece one column left. Blocked moves are no-ops.
func (e *Engine) MoveLeft() bool {
	if !e.acceptsInput() || !e.CanMoveLeft() {
		return false
	}
	for row := e.grid.Rows() - 1; row >= 0; row-- {
		for col := 1; col < e.grid.Cols(); col++ {
			from := Cell{Row: row, Col: col}
			if e.grid.At(from).OwnedBy(e.currentPieceID) {
				e.grid.move(from, from.Add(0, -1))
			}
		}
	}
	e.center = e.center.Add(0, -1)
	return true
}

// MoveRight shifts the falling piece one column right. Blocked moves are no-ops.
func (e *Engine) MoveRight() bool {
	if !e.acceptsInput() || !e.CanMoveRight() {
		return false
	}
	for row := e.grid.Rows() - 1; row >= 0; row-- {
		for col := e.grid.Cols() - 2; col >= 0; col-- {
			from := Cell{Row: row, Col: col}
			if e.grid.At(from).OwnedBy(e.currentPieceID) {
				e.grid.move(from, from.Add(0, 1))
			}
		}
	}
	e.center = e.center.Add(0, 1)
	return true
}

// HardDrop drops the falling piece as far as it goes and locks it.
func (e *Engine) HardDrop() bool {
	if !e.acceptsInput() {
		return false
	}
	for e.CanMoveDown() {
		e.moveOneDown()
	}
	e.lockCurrentPiece()
	return true
}

// GhostCells returns where the falling piece would land if hard-dropped.
// It reads the grid only.
func (e *Engine) GhostCells() []Cell {
	if e.phase != PhaseRunning {
		return nil
	}
	cells := e.CurrentCells()
	if len(cells) == 0 {
		return nil
	}

	drop := 0
	for e.fits(cells, drop+1, 0) {
		drop++
	}

	ghost := make([]Cell, len(cells))
	for i, c := range cells {
		ghost[i] = c.Add(drop, 0)
	}
	return ghost
}

// fits reports whether cells shifted by (dRow, dCol) stay on the grid
// without touching another piece.
func (e *Engine) fits(cells []Cell, dRow, dCol int) bool {
	for _, c := range cells {
		to := c.Add(dRow, dCol)
		if !e.grid.InBounds(to) || e.grid.At(to).BlocksPiece(e.currentPieceID) {
			return false
		}
	}
	return true
}
