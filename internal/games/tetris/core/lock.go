package core

// lockCurrentPiece settles the falling piece: clears full rows, refreshes
// the hole and height counters, and brings in the next piece. If the next
// piece's spawn squares are taken the game ends and the grid is left as is.
func (e *Engine) lockCurrentPiece() {
	cleared := e.removeFullRows()
	e.holes = e.countHoles()
	e.maxHeight = e.measureMaxHeight()

	if cleared > 0 {
		e.logger.Debug("rows cleared", "count", cleared, "total", e.rowsCleared)
	}

	e.selectNewCurrentPiece()
	if !e.canNewPieceBePlaced() {
		e.endGame()
		return
	}
	e.placeNewCurrentPiece()
}

// removeFullRows clears every full row, scanning bottom-up and stopping at
// the first row with nothing in it. Returns how many rows were cleared.
func (e *Engine) removeFullRows() int {
	cleared := 0
	row := e.grid.Rows() - 1
	for row >= 0 {
		empty, full := e.grid.rowStatus(row)
		if empty {
			break
		}
		if full {
			// Re-check the same index: it now holds the row from above.
			e.grid.collapseRow(row)
			cleared++
			e.rowsCleared++
			continue
		}
		row--
	}
	return cleared
}

// countHoles counts empty squares below the topmost occupied square of
// each column.
func (e *Engine) countHoles() int {
	holes := 0
	for col := range e.grid.Cols() {
		covered := false
		for row := range e.grid.Rows() {
			sq := e.grid.At(Cell{Row: row, Col: col})
			if !sq.Empty {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// measureMaxHeight returns the tallest column, counted from the floor to
// its topmost occupied square.
func (e *Engine) measureMaxHeight() int {
	highest := 0
	for col := range e.grid.Cols() {
		for row := range e.grid.Rows() {
			if !e.grid.At(Cell{Row: row, Col: col}).Empty {
				highest = max(highest, e.grid.Rows()-row)
				break
			}
		}
	}
	return highest
}

// selectNewCurrentPiece promotes the next shape and draws a new one.
func (e *Engine) selectNewCurrentPiece() {
	e.currentPieceID++
	e.currentShape = e.nextShape
	e.nextShape = e.randomShape()
	if center, err := DefaultCenter(e.currentShape, e.grid.Cols()); err == nil {
		e.center = center
	}
}

// canNewPieceBePlaced reports whether the current shape's spawn squares are
// all free. An invalid shape is reported and treated as not placeable.
func (e *Engine) canNewPieceBePlaced() bool {
	cells, err := SpawnCells(e.currentShape, e.grid.Cols())
	if err != nil {
		e.logger.Error("cannot spawn piece", "piece", e.currentPieceID, "err", err)
		return false
	}
	for _, c := range cells {
		if !e.grid.InBounds(c) || !e.grid.At(c).Empty {
			return false
		}
	}
	return true
}

// placeNewCurrentPiece writes the current piece at its spawn squares.
func (e *Engine) placeNewCurrentPiece() {
	cells, err := SpawnCells(e.currentShape, e.grid.Cols())
	if err != nil {
		e.logger.Error("cannot place piece", "piece", e.currentPieceID, "err", err)
		return
	}
	center, err := DefaultCenter(e.currentShape, e.grid.Cols())
	if err != nil {
		e.logger.Error("cannot place piece", "piece", e.currentPieceID, "err", err)
		return
	}
	for _, c := range cells {
		e.grid.Occupy(c, e.currentPieceID, e.currentShape)
	}
	e.center = center
}
