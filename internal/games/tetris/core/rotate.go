package core

import (
	"fmt"
	"math"
)

// halfCellThreshold separates pivots on a cell boundary (I and O pieces)
// from pivots on a cell.
const halfCellThreshold = 0.3

// RotateClockwise turns the falling piece 90° clockwise about its rotation
// center. A rotation that would push columns off the grid is first slid back
// inside; a rotation onto another piece or past the floor is rejected and
// leaves the grid and the center unchanged.
func (e *Engine) RotateClockwise() bool {
	if !e.acceptsInput() {
		return false
	}

	target, center, err := e.rotatedCells()
	if err != nil {
		e.logger.Error("rotation abandoned", "piece", e.currentPieceID, "shape", e.currentShape, "err", err)
		return false
	}

	for _, c := range target {
		if !e.grid.InBounds(c) || e.grid.At(c).BlocksPiece(e.currentPieceID) {
			return false
		}
	}

	for _, c := range e.CurrentCells() {
		e.grid.ClearCell(c)
	}
	for _, c := range target {
		e.grid.Occupy(c, e.currentPieceID, e.currentShape)
	}
	e.center = center
	return true
}

// rotatedCells computes the rotated piece and the center after any sideways
// correction. Nothing is written to the grid.
func (e *Engine) rotatedCells() ([]Cell, Center, error) {
	cells := e.CurrentCells()
	if len(cells) == 0 {
		return nil, e.center, fmt.Errorf("%w: piece %d has no squares", ErrInvalidShape, e.currentPieceID)
	}

	rotated := make([]Cell, len(cells))
	for i, c := range cells {
		rotated[i] = rotateAround(c, e.center)
	}

	minCol, maxCol := rotated[0].Col, rotated[0].Col
	for _, c := range rotated[1:] {
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}

	shiftRight := 0
	if minCol < 0 {
		shiftRight = -minCol
	}
	shiftLeft := 0
	if last := e.grid.Cols() - 1; maxCol > last {
		shiftLeft = maxCol - last
	}
	if shiftRight > 0 && shiftLeft > 0 {
		return nil, e.center, fmt.Errorf("%w: columns %d..%d on a %d-wide grid",
			ErrRotationOverflow, minCol, maxCol, e.grid.Cols())
	}

	shift := shiftRight - shiftLeft
	for i := range rotated {
		rotated[i] = rotated[i].Add(0, shift)
	}
	return rotated, e.center.Add(0, shift), nil
}

// rotateAround applies the 90° clockwise rotation matrix to c's offset from
// center. Offsets are rounded to whole cells, except around a half-cell
// pivot where they are rounded to 3 decimals before the final truncation.
func rotateAround(c Cell, center Center) Cell {
	const angle = math.Pi / 2
	cos, sin := math.Cos(angle), math.Sin(angle)

	dx := float64(c.Col) - center.Col
	dy := float64(c.Row) - center.Row

	x := cos*dx - sin*dy
	y := sin*dx + cos*dy

	if isHalfCell(center) {
		x = roundTo(x, 3)
		y = roundTo(y, 3)
	} else {
		x = math.Round(x)
		y = math.Round(y)
	}

	return Cell{
		Row: int(y + center.Row),
		Col: int(x + center.Col),
	}
}

func isHalfCell(c Center) bool {
	return frac(c.Row) > halfCellThreshold || frac(c.Col) > halfCellThreshold
}

// frac returns the non-negative fractional part of v.
func frac(v float64) float64 {
	return v - math.Floor(v)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
