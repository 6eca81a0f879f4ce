// Package window provides a desktop frontend for tui-tetris built on ebiten.
// The board is drawn as filled squares with grid lines, with the next piece
// and the counters in a side panel.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	squareSize = 35  // Pixels per grid square
	margin     = 20  // Around the board
	panelWidth = 200 // Right-hand panel
	lineHeight = 18  // Debug font line spacing

	// Held movement keys repeat after repeatDelay ticks, every repeatEvery ticks.
	repeatDelay = 12
	repeatEvery = 4
)

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	gridLineColor   = color.RGBA{R: 50, G: 50, B: 60, A: 255}
	ghostAlpha      = uint8(70)
)

type binding struct {
	keys   []ebiten.Key
	cmd    core.Command
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, cmd: core.CmdMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, cmd: core.CmdMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, cmd: core.CmdSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyX}, cmd: core.CmdRotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, cmd: core.CmdHardDrop},
}

// Game implements ebiten.Game around an engine.
type Game struct {
	engine *core.Engine
	width  int
	height int
}

// New creates a window frontend for engine.
func New(engine *core.Engine) *Game {
	return &Game{
		engine: engine,
		width:  margin*3 + engine.Cols()*squareSize + panelWidth,
		height: margin*2 + engine.Rows()*squareSize,
	}
}

// Size returns the window size in pixels.
func (g *Game) Size() (w, h int) {
	return g.width, g.height
}

// Update reads input and advances gravity. Called once per tick by ebiten.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !g.engine.Running() {
		g.engine.Handle(core.CmdStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.SetPaused(!g.engine.Paused())
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if triggered(k, b.repeat) {
				g.engine.Handle(b.cmd)
				break
			}
		}
	}

	g.engine.UpdateTimers()
	return nil
}

func triggered(k ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	if !repeat {
		return false
	}
	d := inpututil.KeyPressDuration(k)
	return d > repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

// Draw renders the board and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.engine.Snapshot()
	g.drawBoard(screen, snap)
	g.drawPanel(screen, snap)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) drawBoard(screen *ebiten.Image, snap core.Snapshot) {
	for row := range snap.Rows {
		for col := range snap.Cols {
			sq := snap.At(row, col)
			switch {
			case !sq.Empty:
				fillSquare(screen, row, col, rgba(core.ShapeColor(sq.Shape), 255))
			case snap.IsGhost(row, col):
				fillSquare(screen, row, col, rgba(core.ShapeColor(snap.CurrentShape), ghostAlpha))
			}
		}
	}

	boardW := float32(snap.Cols * squareSize)
	boardH := float32(snap.Rows * squareSize)
	for row := 0; row <= snap.Rows; row++ {
		y := float32(margin + row*squareSize)
		vector.StrokeLine(screen, margin, y, margin+boardW, y, 1, gridLineColor, false)
	}
	for col := 0; col <= snap.Cols; col++ {
		x := float32(margin + col*squareSize)
		vector.StrokeLine(screen, x, margin, x, margin+boardH, 1, gridLineColor, false)
	}
}

func fillSquare(screen *ebiten.Image, row, col int, c color.Color) {
	x := float32(margin + col*squareSize)
	y := float32(margin + row*squareSize)
	vector.DrawFilledRect(screen, x, y, squareSize, squareSize, c, false)
}

func (g *Game) drawPanel(screen *ebiten.Image, snap core.Snapshot) {
	x := margin*2 + snap.Cols*squareSize
	y := margin

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	g.drawPreview(screen, snap.NextShape, x, y+lineHeight)
	y += lineHeight + 4*squareSize/2 + lineHeight

	lines := []string{
		fmt.Sprintf("Rows cleared: %d", snap.RowsCleared),
		fmt.Sprintf("Holes:        %d", snap.Holes),
		fmt.Sprintf("Max height:   %d", snap.MaxHeight),
		fmt.Sprintf("Speed:        %.1f/s", snap.FallFrequency),
		"",
	}
	switch {
	case snap.Phase == core.PhaseNotStarted:
		lines = append(lines, "ENTER to start")
	case snap.Phase == core.PhaseGameOver:
		lines = append(lines, "GAME OVER", "ENTER to restart")
	case snap.Paused:
		lines = append(lines, "PAUSED", "P to resume")
	default:
		lines = append(lines, "Arrows move, Up rotates", "Space drops, P pauses")
	}
	lines = append(lines, "Q quits")

	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += lineHeight
	}
}

// drawPreview draws the next shape at half size.
func (g *Game) drawPreview(screen *ebiten.Image, s core.Shape, x, y int) {
	cells, err := core.SpawnCells(s, 10)
	if err != nil {
		return
	}
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
	}

	const size = squareSize / 2
	clr := rgba(core.ShapeColor(s), 255)
	for _, c := range cells {
		px := float32(x + (c.Col-minCol)*size)
		py := float32(y + (c.Row-minRow)*size)
		vector.DrawFilledRect(screen, px, py, size-1, size-1, clr, false)
	}
}

func rgba(c platformcore.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB()
	if alpha == 255 {
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
	// color.RGBA is alpha-premultiplied.
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 255) }
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: alpha}
}

// Run opens the window and blocks until it is closed.
func Run(engine *core.Engine, title string, tps int) error {
	g := New(engine)
	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(g)
}
