package core

// Piece is a falling tetromino: four cells, a pivot and a shape tag.
// Piece is a value type; every operation returns a new candidate and leaves
// the receiver untouched. Legality is decided by the caller (Game).
type Piece struct {
	cells [4]Coord
	pivot Coord
	shape Shape
	color Color
}

// NewPiece builds a piece from explicit geometry.
// Used for fixtures; normal play goes through Spawn.
func NewPiece(shape Shape, cells [4]Coord, pivot Coord) Piece {
	return Piece{
		cells: cells,
		pivot: pivot,
		shape: shape,
		color: shape.Color(),
	}
}

// Shape returns the shape tag.
func (p Piece) Shape() Shape {
	return p.shape
}

// Color returns the display color.
func (p Piece) Color() Color {
	return p.color
}

// Pivot returns the rotation centre.
func (p Piece) Pivot() Coord {
	return p.pivot
}

// Cells returns a copy of the four occupied coordinates.
func (p Piece) Cells() [4]Coord {
	return p.cells
}

// Translate shifts the piece one cell in the given direction.
// DirNone returns the piece unchanged.
func (p Piece) Translate(d Dir) Piece {
	dx, dy := d.Delta()
	return p.TranslateBy(dx, dy)
}

// TranslateBy shifts all cells and the pivot by (dx, dy).
func (p Piece) TranslateBy(dx, dy int) Piece {
	if dx == 0 && dy == 0 {
		return p
	}
	out := p
	for i, c := range p.cells {
		out.cells[i] = c.Add(dx, dy)
	}
	out.pivot = p.pivot.Add(dx, dy)
	return out
}

// StepDown is Translate(DirDown), used for gravity.
func (p Piece) StepDown() Piece {
	return p.Translate(DirDown)
}

// Rotate applies the raw quarter-turn about the pivot using integer math.
//
//	CW:  (x, y) -> (px + (y - py), py - (x - px))
//	CCW: (x, y) -> (px - (y - py), py + (x - px))
//
// No wall kicks are applied here. Shapes that do not rotate are returned as-is.
func (p Piece) Rotate(r Rotation) Piece {
	if !p.shape.Rotates() {
		return p
	}
	out := p
	for i, c := range p.cells {
		rel := c.Sub(p.pivot)
		var rotated Coord
		if r == CW {
			rotated = C(rel.Y, -rel.X)
		} else {
			rotated = C(-rel.Y, rel.X)
		}
		out.cells[i] = p.pivot.AddCoord(rotated)
	}
	return out
}

// Overlaps reports whether any cell of the piece is in other.
func (p Piece) Overlaps(other map[Coord]bool) bool {
	for _, c := range p.cells {
		if other[c] {
			return true
		}
	}
	return false
}

// OverlapsBoard reports whether any cell of the piece is locked on the board.
func (p Piece) OverlapsBoard(b *Board) bool {
	for _, c := range p.cells {
		if b.Occupied(c) {
			return true
		}
	}
	return false
}

// OutOfBoundsHorizontally reports whether any cell lies outside [0, width).
func (p Piece) OutOfBoundsHorizontally(width int) bool {
	for _, c := range p.cells {
		if c.X < 0 || c.X >= width {
			return true
		}
	}
	return false
}

// AboveCeiling reports whether any cell lies above row 0.
func (p Piece) AboveCeiling() bool {
	for _, c := range p.cells {
		if c.Y < 0 {
			return true
		}
	}
	return false
}

// TouchesFloor reports whether any cell has reached or passed the floor row.
func (p Piece) TouchesFloor(height int) bool {
	for _, c := range p.cells {
		if c.Y >= height {
			return true
		}
	}
	return false
}

// Contains reports whether c is one of the piece's cells.
func (p Piece) Contains(c Coord) bool {
	for _, cell := range p.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// SameCells reports whether two pieces occupy the same set of coordinates.
func (p Piece) SameCells(other Piece) bool {
	for _, c := range p.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}
