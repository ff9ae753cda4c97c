package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard([]string{
		"....",
		".T..",
		"##I#",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 5, b.Len())

	c, ok := b.ColorAt(C(1, 1))
	require.True(t, ok)
	assert.Equal(t, ColorPurple, c)

	c, ok = b.ColorAt(C(2, 2))
	require.True(t, ok)
	assert.Equal(t, ColorCyan, c)

	assert.False(t, b.Occupied(C(0, 0)))
	assert.Equal(t, 4, b.RowCount(2))
	assert.Equal(t, []int{2}, b.FullRows())
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"...", ".."}},
		{"unknown cell", []string{"..x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestBoardSetRejectsOverlapAndOutOfBounds(t *testing.T) {
	b := NewBoard(4, 4)

	assert.True(t, b.Set(C(1, 1), ColorRed))
	assert.False(t, b.Set(C(1, 1), ColorBlue))
	assert.False(t, b.Set(C(-1, 0), ColorBlue))
	assert.False(t, b.Set(C(0, 4), ColorBlue))

	c, _ := b.ColorAt(C(1, 1))
	assert.Equal(t, ColorRed, c)
	assert.Equal(t, 1, b.Len())
	assert.False(t, b.Occupied(C(10, 10)))
}

func TestClearRowsCompactsNonAdjacentRows(t *testing.T) {
	b, err := ParseBoard([]string{
		"I..",
		"###",
		".T.",
		"###",
		"..L",
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, b.FullRows())

	n := b.ClearRows(b.FullRows())
	assert.Equal(t, 2, n)

	assert.Equal(t, []string{
		"...",
		"...",
		"I..",
		".T.",
		"..L",
	}, RenderBoardASCII(b))

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 0, b.RowCount(1))
	assert.Equal(t, 1, b.RowCount(2))
	assert.Empty(t, b.FullRows())
}

func TestClearRowsIgnoresInvalidInput(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(C(0, 0), ColorGray)

	assert.Equal(t, 0, b.ClearRows(nil))
	assert.Equal(t, 0, b.ClearRows([]int{-1, 7}))
	assert.True(t, b.Occupied(C(0, 0)))
}

func TestBoardCellsRowMajor(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(C(3, 2), ColorRed)
	b.Set(C(0, 3), ColorBlue)
	b.Set(C(2, 0), ColorGreen)
	b.Set(C(1, 2), ColorCyan)

	cells := b.Cells()
	require.Len(t, cells, 4)
	assert.Equal(t, C(2, 0), cells[0].Pos)
	assert.Equal(t, C(1, 2), cells[1].Pos)
	assert.Equal(t, C(3, 2), cells[2].Pos)
	assert.Equal(t, C(0, 3), cells[3].Pos)
	assert.Equal(t, ColorBlue, cells[3].Color)
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(C(1, 1), ColorRed)

	clone := b.Clone()
	clone.Set(C(2, 2), ColorBlue)

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, 1, clone.RowCount(1))
}
