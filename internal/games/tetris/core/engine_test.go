package core

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsSmallGrid(t *testing.T) {
	_, err := New(3, 10)
	assert.ErrorIs(t, err, ErrGridTooSmall)

	_, err = New(20, 5)
	assert.ErrorIs(t, err, ErrGridTooSmall)

	e, err := New(MinRows, MinCols)
	require.NoError(t, err)
	assert.Equal(t, PhaseNotStarted, e.Phase())
}

func TestNewRejectsOversizedLayout(t *testing.T) {
	layout := make([][]Shape, 5)
	for i := range layout {
		layout[i] = make([]Shape, 6)
	}
	_, err := New(4, 6, WithStartLayout(layout))
	assert.ErrorIs(t, err, ErrBadLayout)

	_, err = New(20, 10, WithStartLayout([][]Shape{make([]Shape, 9)}))
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestSetupNewGamePlacesFirstPiece(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetupNewGame()

	require.Equal(t, PhaseRunning, e.Phase())
	assert.Equal(t, 1, e.CurrentPieceID())
	assert.True(t, e.CurrentShape().Valid())
	assert.True(t, e.NextShape().Valid())
	assert.ElementsMatch(t, spawnOf(t, e.CurrentShape(), 10), e.CurrentCells())

	center, err := DefaultCenter(e.CurrentShape(), 10)
	require.NoError(t, err)
	assert.Equal(t, center, e.RotationCenter())

	assert.Equal(t, 0, e.RowsCleared())
	assert.Equal(t, 0, e.Holes())
	assert.Equal(t, 0, e.MaxHeight())
	assert.Equal(t, 4, e.grid.CountOccupied())
}

func TestCommandsIgnoredWhenNotRunning(t *testing.T) {
	e, _ := newTestEngine(t)

	for _, cmd := range []Command{CmdMoveLeft, CmdMoveRight, CmdSoftDrop, CmdHardDrop, CmdRotate, CmdQuit, CmdNone} {
		assert.False(t, e.Handle(cmd), "command %v", cmd)
	}
	assert.Equal(t, PhaseNotStarted, e.Phase())
	assert.Equal(t, 0, e.grid.CountOccupied())
	assert.Nil(t, e.GhostCells())

	assert.True(t, e.Handle(CmdStart))
	assert.True(t, e.Running())
}

func TestHandleDispatch(t *testing.T) {
	e, _ := newTestEngine(t)
	startWith(t, e, ShapeT)

	before := e.RotationCenter()
	require.True(t, e.Handle(CmdMoveLeft))
	assert.Equal(t, before.Col-1, e.RotationCenter().Col)

	require.True(t, e.Handle(CmdMoveRight))
	require.True(t, e.Handle(CmdSoftDrop))
	assert.Equal(t, before.Row+1, e.RotationCenter().Row)

	require.True(t, e.Handle(CmdRotate))
	require.True(t, e.Handle(CmdHardDrop))
	assert.Equal(t, 2, e.CurrentPieceID())
	assert.False(t, e.Handle(CmdQuit))
}

func TestRestartResetsCounters(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetupNewGame()
	for e.Running() {
		e.HardDrop()
	}
	require.Equal(t, PhaseGameOver, e.Phase())
	assert.False(t, e.Handle(CmdHardDrop))

	require.True(t, e.Handle(CmdStart))
	assert.Equal(t, PhaseRunning, e.Phase())
	assert.Equal(t, 1, e.CurrentPieceID())
	assert.Equal(t, 0, e.MaxHeight())
	assert.Equal(t, 4, e.grid.CountOccupied())
}

func TestSeedIsDeterministic(t *testing.T) {
	shapes := func() []Shape {
		e, _ := newTestEngine(t, WithSeed(99))
		e.SetupNewGame()
		var out []Shape
		for range 6 {
			out = append(out, e.CurrentShape())
			e.HardDrop()
		}
		return out
	}

	assert.Equal(t, shapes(), shapes())
}

func TestInvalidShapeIsLoggedNotPlaced(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEngine(t, WithLogger(log.New(&buf)))
	e.SetupNewGame()
	e.HardDrop()
	occupied := e.grid.CountOccupied()

	e.currentShape = Shape(42)
	assert.False(t, e.canNewPieceBePlaced())
	e.placeNewCurrentPiece()

	assert.Equal(t, occupied, e.grid.CountOccupied())
	assert.Contains(t, buf.String(), "cannot spawn piece")
	assert.Contains(t, buf.String(), "cannot place piece")
}

func TestSnapshotIsDetached(t *testing.T) {
	e, _ := newTestEngine(t)
	startWith(t, e, ShapeO)

	snap := e.Snapshot()
	assert.True(t, snap.Running())
	assert.Equal(t, 20, snap.Rows)
	assert.Equal(t, 10, snap.Cols)
	assert.Equal(t, ShapeO, snap.CurrentShape)
	assert.Equal(t, e.NextShape(), snap.NextShape)
	assert.Len(t, snap.Ghost, 4)
	assert.True(t, snap.IsGhost(19, 4))
	assert.False(t, snap.IsGhost(0, 4), "piece squares are not ghost squares")

	snap.Squares[19][0].Occupy(9, ShapeI)
	assert.True(t, e.Square(19, 0).Empty)
	assert.True(t, snap.At(-1, 0).Empty)
}

func TestDebugString(t *testing.T) {
	e, _ := newTestEngine(t)
	startWith(t, e, ShapeO)

	lines := bytes.Split([]byte(e.DebugString()), []byte("\n"))
	assert.Equal(t, "....66....", string(lines[0]))
	assert.Equal(t, "....66....", string(lines[1]))
	assert.Equal(t, "..........", string(lines[2]))
}
