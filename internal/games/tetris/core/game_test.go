package core

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := NewGame(opts)
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsTinyBoards(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"narrow", Options{Width: 3, Height: 20}},
		{"short", Options{Width: 10, Height: 3}},
		{"zero", Options{}},
		{"bad fixture", Options{Board: []string{"..?.", "...."}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGame(tt.opts)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestNewGameState(t *testing.T) {
	g := newTestGame(t, DefaultOptions())

	assert.Equal(t, StatusRunning, g.Status())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 0, g.Board().Len())
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Len(t, g.OccupiedCells(), 4)
	assert.Equal(t, g.PreviewShapes(1)[0], g.PeekNextShape())
}

func TestNextShapeBecomesActive(t *testing.T) {
	g := newTestGame(t, DefaultOptions())

	for range 4 {
		next := g.PeekNextShape()
		out, err := g.Step(HardDrop())
		require.NoError(t, err)
		require.Equal(t, OutcomeLocked, out.Kind)
		assert.Equal(t, next, g.Active().Shape())
	}
	assert.Equal(t, 4, g.Pieces())
}

// An upright I falls four rows and locks on the fifth tick.
func TestSoftDropTickLocksAtFloor(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 8, Seed: 1})
	g.active = Spawn(ShapeI, 10)

	for i := range 4 {
		out, err := g.Step(SoftDropTick())
		require.NoError(t, err)
		assert.Equal(t, OutcomeFree, out.Kind, "tick %d", i+1)
		assert.Equal(t, 0, g.Score())
	}

	out, err := g.Step(SoftDropTick())
	require.NoError(t, err)
	assert.Equal(t, OutcomeLocked, out.Kind)
	assert.Equal(t, 4, out.Points)
	assert.Equal(t, 4, g.Score())

	for y := 4; y < 8; y++ {
		c, ok := g.Board().ColorAt(C(4, y))
		require.True(t, ok, "row %d", y)
		assert.Equal(t, ColorCyan, c)
	}
}

func TestManualDownLocksLikeGravity(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 8, Seed: 1})
	g.active = Spawn(ShapeI, 10)

	for i := range 4 {
		out, err := g.Step(Move(DirDown))
		require.NoError(t, err)
		assert.Equal(t, OutcomeFree, out.Kind, "move %d", i+1)
	}

	out, err := g.Step(Move(DirDown))
	require.NoError(t, err)
	assert.Equal(t, OutcomeLocked, out.Kind)
	assert.Equal(t, SoftDropPointsPerCell*4, out.Points)
	assert.Equal(t, 4, g.Score())
}

// One completed row is cleared and the stack above drops by one.
func TestSingleLineClear(t *testing.T) {
	g := newTestGame(t, Options{Board: []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"#.........",
		"##........",
		"#########.",
	}})
	g.active = Spawn(ShapeI, 10).TranslateBy(5, 0) // column 9

	out, err := g.Step(HardDrop())
	require.NoError(t, err)

	assert.Equal(t, OutcomeLocked, out.Kind)
	assert.Equal(t, 1, out.LinesCleared)
	assert.Equal(t, HardDropPointsPerCell*4+100, out.Points)
	assert.Equal(t, out.Points, g.Score())
	assert.Equal(t, 1, g.Lines())

	assert.Equal(t, []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		".........I",
		"#........I",
		"##.......I",
	}, RenderBoardASCII(g.Board()))
}

// Two rows completed by one lock score 2² × 100.
func TestDoubleLineClearIsSquared(t *testing.T) {
	g := newTestGame(t, Options{Board: []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"#.........",
		"########..",
		"########..",
	}})
	g.active = Spawn(ShapeO, 10).TranslateBy(4, 0) // columns 8 and 9

	out, err := g.Step(HardDrop())
	require.NoError(t, err)

	assert.Equal(t, 2, out.LinesCleared)
	assert.Equal(t, 400, LineClearPoints(2))
	assert.Equal(t, HardDropPointsPerCell*4+400, g.Score())
	assert.Equal(t, 2, g.Lines())

	require.Equal(t, 1, g.Board().Len())
	assert.True(t, g.Board().Occupied(C(0, 7)))
}

func TestLineClearPoints(t *testing.T) {
	assert.Equal(t, 0, LineClearPoints(0))
	assert.Equal(t, 100, LineClearPoints(1))
	assert.Equal(t, 400, LineClearPoints(2))
	assert.Equal(t, 900, LineClearPoints(3))
	assert.Equal(t, 1600, LineClearPoints(4))
}

// A T against the left wall rotates only thanks to a kick.
func TestRotateKicksOffLeftWall(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.active = Spawn(ShapeT, 10)

	out, err := g.Step(Rotate(CCW))
	require.NoError(t, err)
	require.Equal(t, OutcomeFree, out.Kind)

	for {
		out, err := g.Step(Move(DirLeft))
		require.NoError(t, err)
		if out.Kind == OutcomeBlocked {
			break
		}
	}
	require.Equal(t, C(0, 1), g.Active().Pivot())

	out, err = g.Step(Rotate(CW))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFree, out.Kind)

	cells := g.Active().Cells()
	assert.ElementsMatch(t, []Coord{C(0, 1), C(1, 1), C(2, 1), C(1, 0)}, cells[:])
	assert.Equal(t, C(1, 1), g.Active().Pivot())
	assert.Equal(t, 0, g.Score())
}

func TestRotateRejectedWhenEveryKickCollides(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.active = Spawn(ShapeT, 10).TranslateBy(0, 8)

	// Wall the piece in completely.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.active.Contains(C(x, y)) {
				g.board.Set(C(x, y), ColorGray)
			}
		}
	}

	before := g.Active()
	for _, r := range []Rotation{CW, CCW} {
		out, err := g.Step(Rotate(r))
		require.NoError(t, err)
		assert.Equal(t, OutcomeBlocked, out.Kind)
		assert.Equal(t, before, g.Active())
	}
	assert.Equal(t, 0, g.Pieces())
}

func TestLateralMoveNeverLocks(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.active = Spawn(ShapeO, 10) // columns 4 and 5
	g.board.Set(C(6, 1), ColorGray)

	out, err := g.Step(Move(DirRight))
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, out.Kind)
	assert.Equal(t, Spawn(ShapeO, 10), g.Active())
	assert.Equal(t, 0, g.Pieces())
	assert.Equal(t, 1, g.Board().Len())

	out, err = g.Step(Move(DirNone))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFree, out.Kind)
	assert.Equal(t, Spawn(ShapeO, 10), g.Active())
}

// The next spawn lands on the cells just locked.
func TestSpawnCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, Options{Width: 4, Height: 4, Seed: 5})
	g.active = Spawn(ShapeI, 4) // fills column 1 top to bottom

	out, err := g.Step(HardDrop())
	require.ErrorIs(t, err, ErrEndOfGame)
	assert.Equal(t, OutcomeLocked, out.Kind)
	assert.Equal(t, StatusGameOver, g.Status())
	assert.True(t, g.IsOver())

	score := g.Score()
	board := RenderBoardASCII(g.Board())
	active := g.Active()

	for _, cmd := range []Command{Move(DirLeft), Rotate(CW), SoftDropTick(), HardDrop()} {
		_, err := g.Step(cmd)
		assert.True(t, errors.Is(err, ErrEndOfGame), "%s", cmd)
	}

	assert.Equal(t, score, g.Score())
	assert.Equal(t, board, RenderBoardASCII(g.Board()))
	assert.Equal(t, active, g.Active())
}

func TestNewGameWithBlockedSpawn(t *testing.T) {
	g, err := NewGame(Options{Board: []string{
		"####",
		"####",
		"....",
		"....",
	}})
	require.ErrorIs(t, err, ErrEndOfGame)
	require.NotNil(t, g)
	assert.Equal(t, StatusGameOver, g.Status())
}

func TestGhostDoesNotMutate(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.active = Spawn(ShapeI, 10)

	ghost := g.Ghost()
	assert.Equal(t, Spawn(ShapeI, 10), g.Active())

	cells := ghost.Cells()
	assert.ElementsMatch(t, []Coord{C(4, 16), C(4, 17), C(4, 18), C(4, 19)}, cells[:])

	g.board.Set(C(4, 10), ColorGray)
	cells = g.Ghost().Cells()
	assert.ElementsMatch(t, []Coord{C(4, 6), C(4, 7), C(4, 8), C(4, 9)}, cells[:])
}

func TestOccupiedCellsOrder(t *testing.T) {
	g := newTestGame(t, Options{Board: []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"...Z......",
		"#.........",
	}})

	cells := g.OccupiedCells()
	require.Len(t, cells, 6)
	assert.Equal(t, C(3, 5), cells[0].Pos)
	assert.Equal(t, ColorRed, cells[0].Color)
	assert.Equal(t, C(0, 6), cells[1].Pos)
	for _, c := range cells[2:] {
		assert.True(t, g.Active().Contains(c.Pos))
		assert.Equal(t, g.Active().Color(), c.Color)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	commands := []Command{
		Move(DirLeft), Rotate(CW), SoftDropTick(), HardDrop(),
		Move(DirRight), Move(DirRight), Rotate(CCW), HardDrop(),
		SoftDropTick(), Move(DirDown), HardDrop(),
	}

	run := func() string {
		g := newTestGame(t, Options{Width: 10, Height: 40, Seed: 1234})
		for _, cmd := range commands {
			_, err := g.Step(cmd)
			require.NoError(t, err)
		}
		return RenderASCII(g)
	}

	assert.Equal(t, run(), run())
}

// Random command streams must never break containment or the no-overlap rule.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	commands := []Command{
		Move(DirLeft), Move(DirRight), Move(DirDown), Move(DirNone),
		Rotate(CW), Rotate(CCW), SoftDropTick(), HardDrop(),
	}

	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t, Options{Width: 10, Height: 12, Seed: seed})
		rng := rand.New(rand.NewSource(seed * 31))
		prevScore := 0

		for step := 0; step < 2000; step++ {
			cmd := commands[rng.Intn(len(commands))]
			_, err := g.Step(cmd)
			if errors.Is(err, ErrEndOfGame) {
				break
			}
			require.NoError(t, err)

			for _, c := range g.Active().Cells() {
				require.True(t, g.Board().InBounds(c), "seed %d step %d: active %s out of bounds", seed, step, c)
				require.False(t, g.Board().Occupied(c), "seed %d step %d: active overlaps %s", seed, step, c)
			}
			for _, lc := range g.Board().Cells() {
				require.True(t, g.Board().InBounds(lc.Pos))
			}
			require.Empty(t, g.Board().FullRows())
			require.GreaterOrEqual(t, g.Score(), prevScore)
			prevScore = g.Score()
		}
	}
}

func TestRenderASCII(t *testing.T) {
	g := newTestGame(t, Options{Width: 4, Height: 4, Seed: 1})
	g.active = Spawn(ShapeI, 4)

	lines := strings.Split(strings.TrimRight(RenderASCII(g), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Score: 0")
	assert.Contains(t, lines[0], "Running")
	for _, row := range lines[1:] {
		assert.Equal(t, ".I..", row)
	}
}
