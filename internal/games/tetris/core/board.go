package core

import (
	"fmt"
	"sort"

	"github.com/kamstrup/intmap"
)

// LockedCell is one frozen square on the board.
type LockedCell struct {
	Pos   Coord
	Color Color
}

// Board holds the locked cells of a width × height well.
// Cells are indexed by y*width+x; a per-row counter makes full-row checks O(1).
type Board struct {
	width  int
	height int
	locked *intmap.Map[int, Color]
	rows   []int
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		locked: intmap.New[int, Color](width * height),
		rows:   make([]int, height),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Len returns the number of locked cells.
func (b *Board) Len() int { return b.locked.Len() }

// InBounds reports whether c lies inside [0, width) × [0, height).
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) key(c Coord) int {
	return c.Y*b.width + c.X
}

func (b *Board) coord(k int) Coord {
	return C(k%b.width, k/b.width)
}

// Occupied reports whether c holds a locked cell. Out-of-bounds is never occupied.
func (b *Board) Occupied(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.locked.Has(b.key(c))
}

// ColorAt returns the color of the locked cell at c.
func (b *Board) ColorAt(c Coord) (Color, bool) {
	if !b.InBounds(c) {
		return 0, false
	}
	return b.locked.Get(b.key(c))
}

// Set locks a single cell. Out-of-bounds or already occupied cells are ignored.
func (b *Board) Set(c Coord, color Color) bool {
	if !b.InBounds(c) || b.locked.Has(b.key(c)) {
		return false
	}
	b.locked.Put(b.key(c), color)
	b.rows[c.Y]++
	return true
}

// Lock writes the piece's cells into the board with the piece's color.
// The caller guarantees the piece is in bounds and disjoint from locked cells.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c, p.Color())
	}
}

// RowCount returns the number of locked cells on row y.
func (b *Board) RowCount(y int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	return b.rows[y]
}

// FullRows returns the indices of full rows, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y, n := range b.rows {
		if n == b.width {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes the given rows and compacts everything above them.
// Each remaining cell drops by the number of cleared rows strictly below it.
func (b *Board) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	cleared := make([]bool, b.height)
	count := 0
	for _, y := range rows {
		if y >= 0 && y < b.height && !cleared[y] {
			cleared[y] = true
			count++
		}
	}
	if count == 0 {
		return 0
	}

	// shift[y] = number of cleared rows below y
	shift := make([]int, b.height)
	below := 0
	for y := b.height - 1; y >= 0; y-- {
		shift[y] = below
		if cleared[y] {
			below++
		}
	}

	next := intmap.New[int, Color](b.width * b.height)
	rows2 := make([]int, b.height)
	b.locked.ForEach(func(k int, color Color) bool {
		c := b.coord(k)
		if cleared[c.Y] {
			return true
		}
		moved := c.Add(0, shift[c.Y])
		next.Put(b.key(moved), color)
		rows2[moved.Y]++
		return true
	})

	b.locked = next
	b.rows = rows2
	return count
}

// Cells returns all locked cells in row-major order.
func (b *Board) Cells() []LockedCell {
	out := make([]LockedCell, 0, b.locked.Len())
	b.locked.ForEach(func(k int, color Color) bool {
		out = append(out, LockedCell{Pos: b.coord(k), Color: color})
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pos.Less(out[j].Pos)
	})
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.width, b.height)
	b.locked.ForEach(func(k int, color Color) bool {
		nb.locked.Put(k, color)
		return true
	})
	copy(nb.rows, b.rows)
	return nb
}

// ParseBoard builds a board from ASCII rows, top row first.
// '.' is empty; shape letters and '#' are locked cells of the matching color.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse board: no rows")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("parse board: empty first row")
	}

	b := NewBoard(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("parse board: row %d has width %d, want %d", y, len(runes), width)
		}
		for x, ch := range runes {
			if ch == '.' {
				continue
			}
			color, ok := ColorFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("parse board: unknown cell %q at %s", ch, C(x, y))
			}
			b.Set(C(x, y), color)
		}
	}
	return b, nil
}
