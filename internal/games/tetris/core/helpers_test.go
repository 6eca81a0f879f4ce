package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestEngine returns a 20x10 engine with a fixed seed and a fake clock.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithSeed(1), WithClock(clock.Now)}, opts...)
	e, err := New(20, 10, opts...)
	require.NoError(t, err)
	return e, clock
}

// startWith starts a game and swaps the spawned piece for shape s.
func startWith(t *testing.T, e *Engine, s Shape) {
	t.Helper()
	e.SetupNewGame()
	require.True(t, e.Running())
	for _, c := range e.CurrentCells() {
		e.grid.ClearCell(c)
	}
	e.currentShape = s
	e.placeNewCurrentPiece()
	require.Len(t, e.CurrentCells(), 4)
}

func spawnOf(t *testing.T, s Shape, cols int) []Cell {
	t.Helper()
	cells, err := SpawnCells(s, cols)
	require.NoError(t, err)
	return cells[:]
}

func minCol(cells []Cell) int {
	m := cells[0].Col
	for _, c := range cells[1:] {
		m = min(m, c.Col)
	}
	return m
}

func maxCol(cells []Cell) int {
	m := cells[0].Col
	for _, c := range cells[1:] {
		m = max(m, c.Col)
	}
	return m
}

func maxRow(cells []Cell) int {
	m := cells[0].Row
	for _, c := range cells[1:] {
		m = max(m, c.Row)
	}
	return m
}
