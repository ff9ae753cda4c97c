package tetris

import (
	"strconv"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants, in terminal characters.
const (
	hudHeight  = 2  // Title line + separator
	panelWidth = 16 // Side panel with preview and stats
	panelGap   = 2
)

// Visual characters for rendering.
const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

// layout is where the well and side panel sit on the screen.
type layout struct {
	cellW  int // Characters per board cell (2 when it fits, else 1)
	well   platformcore.Rect
	panelX int
}

// calculateLayout fits the bordered well and side panel into the screen.
// Cells are two characters wide when possible so the well looks square.
func (g *Game) calculateLayout() {
	g.tooSmall = true
	for _, cellW := range []int{2, 1} {
		wellW := g.board.Width*cellW + 2
		wellH := g.board.Height + 2
		totalW := wellW + panelGap + panelWidth

		if g.screenW < totalW || g.screenH < hudHeight+wellH {
			continue
		}

		x := (g.screenW - totalW) / 2
		y := hudHeight + (g.screenH-hudHeight-wellH)/2
		g.layout = layout{
			cellW:  cellW,
			well:   platformcore.NewRect(x, y, wellW, wellH),
			panelX: x + wellW + panelGap,
		}
		g.tooSmall = false
		return
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", g.minSizeHint())
		return
	}
	if g.engine == nil {
		return
	}

	g.renderWell(dst)
	g.renderPanel(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Score: "+humanize.Comma(int64(g.engine.Score())), "R: restart  B: menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "P: continue  B: menu")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.engine != nil {
		hud += " | Score: " + humanize.Comma(int64(g.engine.Score())) +
			" | Lines: " + strconv.Itoa(g.engine.Lines())
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}
}

// renderWell draws the border, empty cells, locked cells, ghost and active piece.
func (g *Game) renderWell(dst *platformcore.Screen) {
	well := g.layout.well
	dst.DrawBoxWithColor(well, platformcore.ColorGray)

	for y := 0; y < g.engine.Height(); y++ {
		for x := 0; x < g.engine.Width(); x++ {
			g.drawCell(dst, x, y, emptyChar, platformcore.ColorGray, true)
		}
	}

	if g.cfg.Display.Ghost && !g.gameOver {
		ghost := g.engine.Ghost()
		for _, c := range ghost.Cells() {
			g.drawCell(dst, c.X, c.Y, ghostChar, platformcore.ColorGray, false)
		}
	}

	for _, cell := range g.engine.OccupiedCells() {
		g.drawCell(dst, cell.Pos.X, cell.Pos.Y, blockChar, pieceColor(cell.Color), false)
	}
}

// drawCell fills one board cell. Sparse marks only the first character (empty grid dots).
func (g *Game) drawCell(dst *platformcore.Screen, x, y int, ch rune, color platformcore.Color, sparse bool) {
	sx := g.layout.well.X + 1 + x*g.layout.cellW
	sy := g.layout.well.Y + 1 + y
	for i := 0; i < g.layout.cellW; i++ {
		if sparse && i > 0 {
			dst.Set(sx+i, sy, ' ')
			continue
		}
		dst.SetWithColor(sx+i, sy, ch, color)
	}
}

// renderPanel draws the next-piece preview and the stats column.
func (g *Game) renderPanel(dst *platformcore.Screen) {
	x := g.layout.panelX
	y := g.layout.well.Y

	if g.cfg.Display.Preview {
		count := max(g.cfg.Display.PreviewCount, 1)
		dst.DrawTextWithColor(x, y, "NEXT", platformcore.ColorWhite)
		y++
		for _, shape := range g.engine.PreviewShapes(count) {
			if y+previewRows > g.layout.well.Bottom() {
				break
			}
			g.drawPreview(dst, x, y, shape)
			y += previewRows + 1
		}
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", humanize.Comma(int64(g.engine.Score()))},
		{"LINES", strconv.Itoa(g.engine.Lines())},
		{"PIECES", strconv.Itoa(g.engine.Pieces())},
	}
	for _, s := range stats {
		if y+1 >= g.layout.well.Bottom() {
			return
		}
		dst.DrawTextWithColor(x, y, s.label, platformcore.ColorGray)
		dst.DrawTextWithColor(x, y+1, s.value, platformcore.ColorBrightWhite)
		y += 3
	}

	hints := []string{"←→ move", "↑ z rotate", "↓ soft drop", "space drop", "p pause"}
	for _, h := range hints {
		if y >= g.layout.well.Bottom() {
			return
		}
		dst.DrawTextWithColor(x, y, h, platformcore.ColorGray)
		y++
	}
}

// previewRows is the height of a preview slot; an upright I is four rows.
const previewRows = 4

// drawPreview draws a shape at its spawn orientation in a 4×4 slot.
func (g *Game) drawPreview(dst *platformcore.Screen, x, y int, shape core.Shape) {
	p := core.Spawn(shape, previewRows)
	color := pieceColor(p.Color())
	for _, c := range p.Cells() {
		for i := 0; i < g.layout.cellW; i++ {
			dst.SetWithColor(x+c.X*g.layout.cellW+i, y+c.Y, blockChar, color)
		}
	}
}

// renderOverlay draws a centered box with one line per message.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	box := dst.Bounds().CenteredIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, platformcore.ColorWhite)

	for i, l := range lines {
		color := platformcore.ColorBrightWhite
		if i > 0 {
			color = platformcore.ColorGray
		}
		lx := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawTextWithColor(lx, box.Y+1+i, l, color)
	}
}

// minSizeHint describes the smallest terminal that fits this variant.
func (g *Game) minSizeHint() string {
	w := g.board.Width + 2 + panelGap + panelWidth
	h := hudHeight + g.board.Height + 2
	return "Need " + strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

// pieceColor maps engine color tags to platform colors.
func pieceColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorCyan:
		return platformcore.ColorBrightCyan
	case core.ColorYellow:
		return platformcore.ColorBrightYellow
	case core.ColorPurple:
		return platformcore.ColorBrightMagenta
	case core.ColorGreen:
		return platformcore.ColorBrightGreen
	case core.ColorRed:
		return platformcore.ColorBrightRed
	case core.ColorBlue:
		return platformcore.ColorBrightBlue
	case core.ColorOrange:
		return platformcore.ColorOrange
	default:
		return platformcore.ColorGray
	}
}
