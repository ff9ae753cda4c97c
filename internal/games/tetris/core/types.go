// Package core is the rule engine for the falling-block game.
// It owns the board, the active piece, the piece queue and the score.
// This package is UI-agnostic, deterministic for a given seed, and performs no I/O.
package core

// Dir is a translation direction for the active piece.
type Dir uint8

const (
	DirNone Dir = iota // Neutral: translating by DirNone is a no-op
	DirLeft
	DirRight
	DirDown
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one cell in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Rotation is a quarter-turn direction.
type Rotation uint8

const (
	CW Rotation = iota
	CCW
)

// String returns the string representation of a rotation.
func (r Rotation) String() string {
	switch r {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return "Unknown"
	}
}

// Inverse returns the opposite rotation.
func (r Rotation) Inverse() Rotation {
	if r == CW {
		return CCW
	}
	return CW
}

// Color is an opaque display tag carried by pieces and locked cells.
type Color uint8

const (
	ColorCyan Color = iota
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorGray // Pre-filled cells from board fixtures
	ColorCount
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Char returns the single character used for this color in ASCII dumps.
// Piece colors map back to their shape letter.
func (c Color) Char() rune {
	switch c {
	case ColorCyan:
		return 'I'
	case ColorYellow:
		return 'O'
	case ColorPurple:
		return 'T'
	case ColorGreen:
		return 'S'
	case ColorRed:
		return 'Z'
	case ColorBlue:
		return 'J'
	case ColorOrange:
		return 'L'
	case ColorGray:
		return '#'
	default:
		return '?'
	}
}

// ColorFromChar is the inverse of Color.Char.
func ColorFromChar(ch rune) (Color, bool) {
	for c := Color(0); c < ColorCount; c++ {
		if c.Char() == ch {
			return c, true
		}
	}
	return 0, false
}
