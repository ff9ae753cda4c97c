// Package tetris adapts the rule engine to the terminal platform: it registers
// the board variants, turns platform ticks into engine commands on two cadences,
// and draws the well onto a core.Screen.
package tetris

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return New(config.VariantClassic)
	})
	registry.Register(config.VariantWide, func() registry.Game {
		return New(config.VariantWide)
	})
}

// Game is one tetris session on a fixed board variant.
type Game struct {
	variant string
	cfg     config.TetrisConfig
	board   config.BoardPreset
	cadence config.Cadence

	engine *core.Game
	rng    *rand.Rand

	// Screen
	screenW  int
	screenH  int
	tickRate int
	layout   layout

	// Timers
	tick         uint64
	gravityTimer int
	inputTimer   int
	pending      *core.Command // Latest buffered input, applied on the input cadence

	// Status
	paused   bool
	gameOver bool
	tooSmall bool
}

// New creates a game for the given variant using the current package configuration.
// Unknown variants fall back to the classic board.
func New(variant string) *Game {
	cfg := CurrentConfig()
	board, err := cfg.Board(variant)
	if err != nil {
		variant = config.VariantClassic
		board = cfg.Boards.Classic
	}
	return &Game{
		variant: variant,
		cfg:     cfg,
		board:   board,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantWide {
		return "Tetris (wide)"
	}
	return "Tetris"
}

// Reset starts a fresh engine seeded from cfg.Seed.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultTickRate
	}
	g.cadence = config.CadenceFor(g.cfg.Timing, g.tickRate)

	g.tick = 0
	g.gravityTimer = 0
	g.inputTimer = 0
	g.pending = nil
	g.paused = false
	g.gameOver = false

	engine, err := core.NewGame(core.Options{
		Width:  g.board.Width,
		Height: g.board.Height,
		Seed:   g.rng.Int63(),
	})
	if errors.Is(err, core.ErrInvalidOptions) {
		g.board = config.DefaultTetrisConfig().Boards.Classic
		engine, err = core.NewGame(core.Options{Width: g.board.Width, Height: g.board.Height, Seed: g.rng.Int63()})
	}
	g.engine = engine
	if errors.Is(err, core.ErrEndOfGame) {
		g.gameOver = true
	}

	g.calculateLayout()
}

// Step advances the game by one platform tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if cmd, ok := commandFor(input); ok {
		g.pending = &cmd
	}

	var result platformcore.StepResult

	g.inputTimer++
	if g.inputTimer >= g.cadence.InputTicks {
		g.inputTimer = 0
		if g.pending != nil {
			cmd := *g.pending
			g.pending = nil
			locked := g.apply(cmd, &result)
			if locked {
				// A fresh piece gets a full gravity interval.
				g.gravityTimer = 0
			}
		}
	}

	if !g.gameOver {
		g.gravityTimer++
		if g.gravityTimer >= g.cadence.GravityTicks {
			g.gravityTimer = 0
			g.apply(core.SoftDropTick(), &result)
		}
	}

	result.State = g.State()
	return result
}

// apply sends one command to the engine and folds the outcome into result.
// It reports whether the active piece locked.
func (g *Game) apply(cmd core.Command, result *platformcore.StepResult) bool {
	out, err := g.engine.Step(cmd)
	result.LinesCleared += out.LinesCleared
	if errors.Is(err, core.ErrEndOfGame) {
		if !g.gameOver {
			result.Ended = true
		}
		g.gameOver = true
		g.pending = nil
	}
	return out.Kind == core.OutcomeLocked
}

// commandFor picks the single command a frame maps to.
// Drops beat rotations, rotations beat lateral moves.
func commandFor(input platformcore.InputFrame) (core.Command, bool) {
	switch {
	case input.Has(platformcore.ActionHardDrop):
		return core.HardDrop(), true
	case input.Has(platformcore.ActionRotateCW):
		return core.Rotate(core.CW), true
	case input.Has(platformcore.ActionRotateCCW):
		return core.Rotate(core.CCW), true
	case input.Has(platformcore.ActionLeft) && !input.Has(platformcore.ActionRight):
		return core.Move(core.DirLeft), true
	case input.Has(platformcore.ActionRight) && !input.Has(platformcore.ActionLeft):
		return core.Move(core.DirRight), true
	case input.Has(platformcore.ActionDown):
		return core.Move(core.DirDown), true
	default:
		return core.Command{}, false
	}
}

// State returns score, lines and status flags.
func (g *Game) State() platformcore.GameState {
	state := platformcore.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.engine != nil {
		state.Score = g.engine.Score()
		state.Lines = g.engine.Lines()
	}
	return state
}

// Resize updates the screen size and recomputes the layout.
// The platform calls this on terminal resize; a too-small window pauses the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}
