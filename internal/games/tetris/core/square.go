package core

// PieceIDEmpty marks a square no piece owns. Live piece ids start at 1.
const PieceIDEmpty = 0

// PieceIDGarbage owns squares pre-filled from a start layout. It never
// matches a live piece.
const PieceIDGarbage = -1

// Square is one playfield cell.
type Square struct {
	Row     int
	Col     int
	Empty   bool
	PieceID int   // Owning piece instance, PieceIDEmpty when Empty
	Shape   Shape // Shape of the owner, ShapeEmpty when Empty
}

// NewSquare returns an empty square at (row, col).
func NewSquare(row, col int) Square {
	return Square{
		Row:     row,
		Col:     col,
		Empty:   true,
		PieceID: PieceIDEmpty,
		Shape:   ShapeEmpty,
	}
}

// Occupy marks the square as owned by the given piece.
func (s *Square) Occupy(pieceID int, shape Shape) {
	s.Empty = false
	s.PieceID = pieceID
	s.Shape = shape
}

// Clear returns the square to the empty state. Row and Col never change.
func (s *Square) Clear() {
	s.Empty = true
	s.PieceID = PieceIDEmpty
	s.Shape = ShapeEmpty
}

// copyContents takes occupancy from other while keeping this square's position.
func (s *Square) copyContents(other Square) {
	s.Empty = other.Empty
	s.PieceID = other.PieceID
	s.Shape = other.Shape
}

// OwnedBy reports whether the square belongs to the given piece.
func (s Square) OwnedBy(pieceID int) bool {
	return !s.Empty && s.PieceID == pieceID
}

// BlocksPiece reports whether the square is occupied by anything other
// than the given piece.
func (s Square) BlocksPiece(pieceID int) bool {
	return !s.Empty && s.PieceID != pieceID
}
