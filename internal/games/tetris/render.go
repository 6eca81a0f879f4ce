package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants, in screen cells.
const (
	cellW    = 2  // Each square is two characters wide
	panelGap = 2  // Between the board and the side panel
	panelW   = 18 // Side panel width
)

var (
	blockRunes = [cellW]rune{'█', '█'}
	ghostRunes = [cellW]rune{'░', '░'}
	emptyRunes = [cellW]rune{' ', '·'}
)

// MinScreenSize returns the smallest screen that fits the board and panel.
func (g *Game) MinScreenSize() (w, h int) {
	return g.cfg.Grid.Cols*cellW + 2 + panelGap + panelW, g.cfg.Grid.Rows + 2
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	snap := g.engine.Snapshot()
	area := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).CenterIn(minW, minH)
	board := platformcore.NewRect(area.X, area.Y, snap.Cols*cellW+2, snap.Rows+2)
	panel := platformcore.NewRect(board.Right()+panelGap, area.Y, panelW, minH)

	renderBoard(dst, board, snap)
	renderPanel(dst, panel, snap)
	renderOverlay(dst, board, snap)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
}

func renderBoard(dst *platformcore.Screen, board platformcore.Rect, snap core.Snapshot) {
	dst.DrawBox(board, platformcore.ColorGray)

	for row := range snap.Rows {
		y := board.Y + 1 + row
		for col := range snap.Cols {
			x := board.X + 1 + col*cellW
			sq := snap.At(row, col)
			switch {
			case !sq.Empty:
				drawCell(dst, x, y, blockRunes, core.ShapeColor(sq.Shape))
			case snap.IsGhost(row, col):
				drawCell(dst, x, y, ghostRunes, core.ShapeColor(snap.CurrentShape))
			default:
				drawCell(dst, x, y, emptyRunes, platformcore.ColorDim)
			}
		}
	}
}

func drawCell(dst *platformcore.Screen, x, y int, runes [cellW]rune, c platformcore.Color) {
	for i, r := range runes {
		dst.SetColored(x+i, y, r, c)
	}
}

func renderPanel(dst *platformcore.Screen, panel platformcore.Rect, snap core.Snapshot) {
	preview := platformcore.NewRect(panel.X, panel.Y, panelW, 6)
	dst.DrawBox(preview, platformcore.ColorGray)
	dst.DrawText(preview.X+2, preview.Y, " NEXT ")
	renderPreview(dst, preview, snap.NextShape)

	y := preview.Bottom() + 1
	stats := []struct {
		label string
		value string
	}{
		{"Rows", fmt.Sprintf("%d", snap.RowsCleared)},
		{"Holes", fmt.Sprintf("%d", snap.Holes)},
		{"Height", fmt.Sprintf("%d", snap.MaxHeight)},
		{"Speed", fmt.Sprintf("%.1f/s", snap.FallFrequency)},
	}
	for _, s := range stats {
		dst.DrawText(panel.X+1, y, fmt.Sprintf("%-7s%10s", s.label, s.value))
		y++
	}

	y++
	dst.DrawTextColored(panel.X+1, y, statusText(snap), statusColor(snap))
}

// renderPreview draws the next shape in its spawn orientation, centred in box.
func renderPreview(dst *platformcore.Screen, box platformcore.Rect, s core.Shape) {
	cells, err := core.SpawnCells(s, 10)
	if err != nil {
		return
	}

	minRow, minCol, maxCol := cells[0].Row, cells[0].Col, cells[0].Col
	for _, c := range cells[1:] {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}

	width := (maxCol - minCol + 1) * cellW
	x0 := box.X + (box.W-width)/2
	y0 := box.Y + 2
	for _, c := range cells {
		drawCell(dst, x0+(c.Col-minCol)*cellW, y0+c.Row-minRow, blockRunes, core.ShapeColor(s))
	}
}

func renderOverlay(dst *platformcore.Screen, board platformcore.Rect, snap core.Snapshot) {
	var lines []string
	switch {
	case snap.Phase == core.PhaseNotStarted:
		lines = []string{"TETRIS", "", "ENTER to start"}
	case snap.Phase == core.PhaseGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("%d rows", snap.RowsCleared), "ENTER to restart"}
	case snap.Paused:
		lines = []string{"PAUSED", "", "P to resume"}
	default:
		return
	}

	y := board.Y + board.H/2 - len(lines)/2
	band := platformcore.NewRect(board.X+1, y-1, board.W-2, len(lines)+2)
	dst.DrawRect(band, ' ')
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := board.X + (board.W-len([]rune(line)))/2
		dst.DrawTextColored(x, y+i, line, platformcore.ColorYellow)
	}
}

func statusText(snap core.Snapshot) string {
	switch {
	case snap.Phase == core.PhaseGameOver:
		return "Game over"
	case snap.Phase == core.PhaseNotStarted:
		return "Ready"
	case snap.Paused:
		return "Paused"
	default:
		return "Playing"
	}
}

func statusColor(snap core.Snapshot) platformcore.Color {
	if snap.Phase == core.PhaseGameOver {
		return platformcore.ColorRed
	}
	return platformcore.ColorGreen
}
