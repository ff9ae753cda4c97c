package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// StatusType is the adapter-level status shown to the player.
type StatusType string

const (
	StatePlaying     StatusType = "playing"
	StatePaused      StatusType = "paused"
	StateGameOver    StatusType = "game_over"
	StatePausedSmall StatusType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Score       int
	Lines       int
	Pieces      int
	BoardCells  int
	ActiveShape core.Shape
	ActivePivot core.Coord
	NextShape   core.Shape
	State       StatusType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.variant,
		State:   state,
	}
	if g.engine != nil {
		snap.Score = g.engine.Score()
		snap.Lines = g.engine.Lines()
		snap.Pieces = g.engine.Pieces()
		snap.BoardCells = g.engine.Board().Len()
		snap.ActiveShape = g.engine.Active().Shape()
		snap.ActivePivot = g.engine.Active().Pivot()
		snap.NextShape = g.engine.PeekNextShape()
	}
	return snap
}

// ASCII returns the engine's text dump, for debugging.
func (g *Game) ASCII() string {
	if g.engine == nil {
		return ""
	}
	return core.RenderASCII(g.engine)
}
