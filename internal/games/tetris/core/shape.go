package core

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	ShapeCount // Sentinel value for iteration
)

// String returns the shape letter.
func (s Shape) String() string {
	if s >= ShapeCount {
		return "?"
	}
	return string(shapeTable[s].letter)
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s < ShapeCount
}

// Color returns the fixed display color of the shape.
func (s Shape) Color() Color {
	return shapeTable[s].color
}

// Kicks returns the offsets tried, in priority order, after a raw rotation.
// The returned slice must not be modified.
func (s Shape) Kicks() []Coord {
	return shapeTable[s].kicks
}

// Rotates reports whether the shape changes under rotation.
// The O piece is rotation-invariant and is never moved by a rotate command.
func (s Shape) Rotates() bool {
	return shapeTable[s].rotates
}

// AllShapes returns the seven shapes in declaration order.
func AllShapes() []Shape {
	shapes := make([]Shape, ShapeCount)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// ShapeFromLetter parses a shape letter (I, O, T, S, Z, J, L).
func ShapeFromLetter(letter rune) (Shape, bool) {
	for s := Shape(0); s < ShapeCount; s++ {
		if shapeTable[s].letter == letter {
			return s, true
		}
	}
	return 0, false
}

// shapeDef is one row of the geometry table.
// Cells and pivot are offsets from the spawn origin (centre column, top row).
type shapeDef struct {
	letter  rune
	color   Color
	cells   [4]Coord
	pivot   Coord
	rotates bool
	kicks   []Coord
}

// Kick lists. The first entry is always the unshifted placement.
var (
	kicksO = []Coord{{0, 0}}

	kicksI = []Coord{
		{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {2, 0},
		{0, 1}, {0, 2}, {0, -1},
	}

	kicksStandard = []Coord{
		{0, 0}, {-1, 0}, {1, 0},
		{0, 1}, {-1, 1}, {1, 1},
		{0, -1}, {-2, 0}, {2, 0},
	}
)

// shapeTable maps every shape to its spawn layout, color and kick offsets.
// I spawns upright (four rows tall); the others spawn flat with the pivot
// on the second row so that a rotation at spawn stays below the ceiling.
var shapeTable = [ShapeCount]shapeDef{
	ShapeI: {
		letter:  'I',
		color:   ColorCyan,
		cells:   [4]Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		pivot:   Coord{0, 1},
		rotates: true,
		kicks:   kicksI,
	},
	ShapeO: {
		letter:  'O',
		color:   ColorYellow,
		cells:   [4]Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		pivot:   Coord{0, 0},
		rotates: false,
		kicks:   kicksO,
	},
	ShapeT: {
		letter:  'T',
		color:   ColorPurple,
		cells:   [4]Coord{{0, 0}, {-1, 1}, {0, 1}, {1, 1}},
		pivot:   Coord{0, 1},
		rotates: true,
		kicks:   kicksStandard,
	},
	ShapeS: {
		letter:  'S',
		color:   ColorGreen,
		cells:   [4]Coord{{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		pivot:   Coord{0, 1},
		rotates: true,
		kicks:   kicksStandard,
	},
	ShapeZ: {
		letter:  'Z',
		color:   ColorRed,
		cells:   [4]Coord{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		pivot:   Coord{0, 1},
		rotates: true,
		kicks:   kicksStandard,
	},
	ShapeJ: {
		letter:  'J',
		color:   ColorBlue,
		cells:   [4]Coord{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}},
		pivot:   Coord{0, 1},
		rotates: true,
		kicks:   kicksStandard,
	},
	ShapeL: {
		letter:  'L',
		color:   ColorOrange,
		cells:   [4]Coord{{1, 0}, {-1, 1}, {0, 1}, {1, 1}},
		pivot:   Coord{0, 1},
		rotates: true,
		kicks:   kicksStandard,
	},
}

// SpawnOrigin returns the column used as the spawn origin on a board of the given width.
func SpawnOrigin(boardWidth int) Coord {
	return C((boardWidth-1)/2, 0)
}

// Spawn creates a piece of the given shape at the canonical spawn position.
func Spawn(shape Shape, boardWidth int) Piece {
	def := shapeTable[shape]
	origin := SpawnOrigin(boardWidth)

	var cells [4]Coord
	for i, off := range def.cells {
		cells[i] = origin.AddCoord(off)
	}

	return Piece{
		cells: cells,
		pivot: origin.AddCoord(def.pivot),
		shape: shape,
		color: def.color,
	}
}
