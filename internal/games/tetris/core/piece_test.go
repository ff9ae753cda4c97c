package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnInsideBoard(t *testing.T) {
	for _, width := range []int{4, 10, 40} {
		for _, s := range AllShapes() {
			p := Spawn(s, width)

			seen := make(map[Coord]bool)
			for _, c := range p.Cells() {
				assert.GreaterOrEqual(t, c.X, 0, "%s at width %d", s, width)
				assert.Less(t, c.X, width, "%s at width %d", s, width)
				assert.GreaterOrEqual(t, c.Y, 0, "%s at width %d", s, width)
				seen[c] = true
			}
			assert.Len(t, seen, 4, "%s cells must be distinct", s)
			assert.Equal(t, s.Color(), p.Color())
			assert.Equal(t, s, p.Shape())
		}
	}
}

func TestSpawnIsUprightI(t *testing.T) {
	p := Spawn(ShapeI, 10)
	assert.Equal(t, [4]Coord{C(4, 0), C(4, 1), C(4, 2), C(4, 3)}, p.Cells())
	assert.Equal(t, C(4, 1), p.Pivot())
}

func TestTranslate(t *testing.T) {
	p := Spawn(ShapeT, 10)

	left := p.Translate(DirLeft)
	assert.Equal(t, p.Pivot().Add(-1, 0), left.Pivot())
	for i, c := range left.Cells() {
		assert.Equal(t, p.Cells()[i].Add(-1, 0), c)
	}

	assert.Equal(t, p, p.Translate(DirNone))
	assert.Equal(t, p.Translate(DirDown), p.StepDown())

	// receiver untouched
	assert.Equal(t, Spawn(ShapeT, 10), p)
}

func TestRotateMath(t *testing.T) {
	p := Spawn(ShapeT, 10) // (4,0) (3,1) (4,1) (5,1), pivot (4,1)

	cw := p.Rotate(CW)
	cwCells := cw.Cells()
	assert.ElementsMatch(t, []Coord{C(3, 1), C(4, 2), C(4, 1), C(4, 0)}, cwCells[:])
	assert.Equal(t, p.Pivot(), cw.Pivot())

	ccwCells := p.Rotate(CCW).Cells()
	assert.ElementsMatch(t, []Coord{C(5, 1), C(4, 0), C(4, 1), C(4, 2)}, ccwCells[:])
}

func TestRotateRoundTrip(t *testing.T) {
	for _, s := range AllShapes() {
		p := Spawn(s, 10).TranslateBy(0, 5)

		for _, r := range []Rotation{CW, CCW} {
			assert.Equal(t, p, p.Rotate(r).Rotate(r.Inverse()), "%s %s then back", s, r)
		}

		full := p
		for range 4 {
			full = full.Rotate(CW)
		}
		assert.Equal(t, p, full, "%s four quarter turns", s)
	}
}

func TestORotationIsIdentity(t *testing.T) {
	p := Spawn(ShapeO, 10)
	assert.Equal(t, p, p.Rotate(CW))
	assert.Equal(t, p, p.Rotate(CCW))
	assert.Equal(t, []Coord{{0, 0}}, ShapeO.Kicks())
	assert.False(t, ShapeO.Rotates())
}

func TestRotationInverse(t *testing.T) {
	assert.Equal(t, CCW, CW.Inverse())
	assert.Equal(t, CW, CCW.Inverse())
}

func TestNewPieceAndSameCells(t *testing.T) {
	spawned := Spawn(ShapeT, 10)
	cells := spawned.Cells()
	built := NewPiece(ShapeT, cells, spawned.Pivot())

	assert.Equal(t, spawned, built)
	assert.Equal(t, ShapeT.Color(), built.Color())

	// Same cells in another order still match.
	cells[0], cells[3] = cells[3], cells[0]
	assert.True(t, NewPiece(ShapeT, cells, spawned.Pivot()).SameCells(spawned))
	assert.False(t, spawned.TranslateBy(1, 0).SameCells(spawned))
}

func TestShapeValid(t *testing.T) {
	for _, s := range AllShapes() {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, ShapeCount.Valid())
	assert.False(t, Shape(200).Valid())
}

func TestKickTablesStartUnshifted(t *testing.T) {
	for _, s := range AllShapes() {
		kicks := s.Kicks()
		require.NotEmpty(t, kicks, "%s", s)
		assert.Equal(t, C(0, 0), kicks[0], "%s", s)
	}
}

func TestBoundaryPredicates(t *testing.T) {
	p := Spawn(ShapeI, 10)

	assert.False(t, p.OutOfBoundsHorizontally(10))
	assert.True(t, p.TranslateBy(-5, 0).OutOfBoundsHorizontally(10))
	assert.True(t, p.TranslateBy(6, 0).OutOfBoundsHorizontally(10))

	assert.False(t, p.AboveCeiling())
	assert.True(t, p.TranslateBy(0, -1).AboveCeiling())

	assert.False(t, p.TouchesFloor(4))
	assert.True(t, p.StepDown().TouchesFloor(4))
}

func TestOverlaps(t *testing.T) {
	p := Spawn(ShapeO, 10) // (4,0) (5,0) (4,1) (5,1)

	assert.True(t, p.Overlaps(map[Coord]bool{C(5, 1): true}))
	assert.False(t, p.Overlaps(map[Coord]bool{C(6, 1): true}))
	assert.False(t, p.Overlaps(nil))

	b := NewBoard(10, 4)
	assert.False(t, p.OverlapsBoard(b))
	b.Set(C(4, 1), ColorGray)
	assert.True(t, p.OverlapsBoard(b))
}

func TestShapeFromLetter(t *testing.T) {
	for _, s := range AllShapes() {
		got, ok := ShapeFromLetter([]rune(s.String())[0])
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ShapeFromLetter('X')
	assert.False(t, ok)
}
