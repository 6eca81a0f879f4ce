package core

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the engine.
type Snapshot struct {
	Rows, Cols int
	Squares    [][]Square

	Phase          Phase
	Paused         bool
	CurrentPieceID int
	CurrentShape   Shape
	NextShape      Shape
	Center         Center
	Ghost          []Cell

	RowsCleared   int
	Holes         int
	MaxHeight     int
	FallFrequency float64
}

// Snapshot copies the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Rows:           e.grid.Rows(),
		Cols:           e.grid.Cols(),
		Squares:        e.grid.Copy(),
		Phase:          e.phase,
		Paused:         e.paused,
		CurrentPieceID: e.currentPieceID,
		CurrentShape:   e.currentShape,
		NextShape:      e.nextShape,
		Center:         e.center,
		Ghost:          e.GhostCells(),
		RowsCleared:    e.rowsCleared,
		Holes:          e.holes,
		MaxHeight:      e.maxHeight,
		FallFrequency:  e.fallFrequency,
	}
}

// At returns the square at (row, col), or an empty square off the grid.
func (s Snapshot) At(row, col int) Square {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return NewSquare(row, col)
	}
	return s.Squares[row][col]
}

// IsGhost reports whether (row, col) is part of the landing preview and not
// already covered by the falling piece.
func (s Snapshot) IsGhost(row, col int) bool {
	if !s.At(row, col).Empty {
		return false
	}
	for _, c := range s.Ghost {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

// Running reports whether a game is in progress.
func (s Snapshot) Running() bool {
	return s.Phase == PhaseRunning
}
