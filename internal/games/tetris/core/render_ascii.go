package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates a text dump of the game, used for debugging and golden tests.
//
// Format:
//   - Header: score, lines, next shape, status
//   - Well: '.' empty, shape letter for locked and active cells, '#' for fixture cells
func RenderASCII(g *Game) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d | Lines: %d | Next: %s | %s\n",
		g.Score(), g.Lines(), g.PeekNextShape(), g.Status()))

	active := g.Active()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := C(x, y)
			if color, ok := g.Board().ColorAt(c); ok {
				sb.WriteRune(color.Char())
				continue
			}
			if active.Contains(c) {
				sb.WriteRune(active.Color().Char())
				continue
			}
			sb.WriteByte('.')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderBoardASCII dumps only the locked cells, one row per line, in ParseBoard format.
func RenderBoardASCII(b *Board) []string {
	rows := make([]string, b.Height())
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < b.Width(); x++ {
			if color, ok := b.ColorAt(C(x, y)); ok {
				sb.WriteRune(color.Char())
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
