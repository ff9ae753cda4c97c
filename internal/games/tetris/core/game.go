package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEndOfGame is returned by Step when a freshly spawned piece is obstructed,
// and by every Step after that.
var ErrEndOfGame = errors.New("end of game")

// ErrInvalidOptions is wrapped by NewGame when the options cannot describe a playable board.
var ErrInvalidOptions = errors.New("invalid options")

// MinBoardSize is the smallest width and height accepted by NewGame.
// Four rows fit an upright I piece; four columns fit every flat spawn.
const MinBoardSize = 4

// Scoring constants.
const (
	SoftDropPointsPerCell = 1
	HardDropPointsPerCell = 2
	LineClearBase         = 100
)

// LineClearPoints returns the award for clearing k rows with one lock: k² × 100.
func LineClearPoints(k int) int {
	return k * k * LineClearBase
}

// Status is the game lifecycle state.
type Status uint8

const (
	StatusRunning Status = iota
	StatusGameOver
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Options configures a new game.
type Options struct {
	Width  int
	Height int
	Seed   int64

	// Board optionally pre-fills the well from ASCII rows (see ParseBoard).
	// When set, its dimensions override Width and Height.
	Board []string
}

// DefaultOptions returns the classic 10 × 20 well.
func DefaultOptions() Options {
	return Options{Width: 10, Height: 20, Seed: 1}
}

// Game is the rule-engine state machine.
// It owns the board, the active piece, the queue and the score exclusively.
type Game struct {
	board  *Board
	active Piece
	queue  *Queue
	rng    *rand.Rand

	score  int
	lines  int
	pieces int
	status Status
}

// NewGame creates a game and spawns the first piece.
// If the first spawn is already obstructed (only possible with a pre-filled board)
// the returned game is in StatusGameOver and the error wraps ErrEndOfGame.
func NewGame(opts Options) (*Game, error) {
	var board *Board
	if len(opts.Board) > 0 {
		b, err := ParseBoard(opts.Board)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
		board = b
	} else {
		board = NewBoard(opts.Width, opts.Height)
	}

	if board.Width() < MinBoardSize || board.Height() < MinBoardSize {
		return nil, fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidOptions, board.Width(), board.Height(), MinBoardSize, MinBoardSize)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		board: board,
		queue: NewQueue(rng),
		rng:   rng,
	}
	if err := g.spawnNext(); err != nil {
		return g, err
	}
	return g, nil
}

// Board returns the board. Callers must not mutate it.
func (g *Game) Board() *Board { return g.board }

// Active returns the falling piece.
func (g *Game) Active() Piece { return g.active }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Pieces returns the number of locked pieces.
func (g *Game) Pieces() int { return g.pieces }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.status == StatusGameOver }

// PeekNextShape returns the shape that will spawn after the active piece locks.
func (g *Game) PeekNextShape() Shape { return g.queue.Peek() }

// PreviewShapes returns up to n upcoming shapes.
func (g *Game) PreviewShapes(n int) []Shape { return g.queue.Preview(n) }

// Width returns the board width.
func (g *Game) Width() int { return g.board.Width() }

// Height returns the board height.
func (g *Game) Height() int { return g.board.Height() }

// Step applies one command.
// Illegal lateral moves and rotations are Blocked no-ops. Blocked downward
// motion locks the active piece. The only error is ErrEndOfGame.
func (g *Game) Step(cmd Command) (Outcome, error) {
	if g.status == StatusGameOver {
		return Outcome{Kind: OutcomeBlocked}, ErrEndOfGame
	}

	switch cmd.Kind {
	case CmdMove:
		if cmd.Dir == DirDown {
			return g.descend()
		}
		return g.shift(cmd.Dir), nil
	case CmdRotate:
		return g.rotate(cmd.Rotation), nil
	case CmdSoftDropTick:
		return g.descend()
	case CmdHardDrop:
		return g.hardDrop()
	default:
		return Outcome{Kind: OutcomeBlocked}, nil
	}
}

// Ghost returns the position the active piece would rest at after a hard drop.
func (g *Game) Ghost() Piece {
	p := g.active
	for {
		next := p.StepDown()
		if !g.legal(next) {
			return p
		}
		p = next
	}
}

// OccupiedCells lists locked cells (row-major) followed by the active piece's
// cells that are not already locked.
func (g *Game) OccupiedCells() []LockedCell {
	cells := g.board.Cells()
	for _, c := range g.active.Cells() {
		if g.board.Occupied(c) {
			continue
		}
		cells = append(cells, LockedCell{Pos: c, Color: g.active.Color()})
	}
	return cells
}

// legal reports whether p fits inside the well without touching locked cells.
func (g *Game) legal(p Piece) bool {
	return !p.OutOfBoundsHorizontally(g.board.Width()) &&
		!p.AboveCeiling() &&
		!p.TouchesFloor(g.board.Height()) &&
		!p.OverlapsBoard(g.board)
}

func (g *Game) shift(d Dir) Outcome {
	candidate := g.active.Translate(d)
	if !g.legal(candidate) {
		return Outcome{Kind: OutcomeBlocked}
	}
	g.active = candidate
	return Outcome{Kind: OutcomeFree}
}

// rotate tries the raw rotation shifted by each kick offset in order.
func (g *Game) rotate(r Rotation) Outcome {
	raw := g.active.Rotate(r)
	for _, k := range g.active.Shape().Kicks() {
		candidate := raw.TranslateBy(k.X, k.Y)
		if g.legal(candidate) {
			g.active = candidate
			return Outcome{Kind: OutcomeFree}
		}
	}
	return Outcome{Kind: OutcomeBlocked}
}

func (g *Game) descend() (Outcome, error) {
	candidate := g.active.StepDown()
	if g.legal(candidate) {
		g.active = candidate
		return Outcome{Kind: OutcomeFree}, nil
	}
	return g.lock(g.active, SoftDropPointsPerCell)
}

func (g *Game) hardDrop() (Outcome, error) {
	return g.lock(g.Ghost(), HardDropPointsPerCell)
}

// lock freezes p, clears full rows, scores, and spawns the next piece.
func (g *Game) lock(p Piece, perCell int) (Outcome, error) {
	cells := p.Cells()
	g.board.Lock(p)

	points := perCell * len(cells)
	cleared := g.board.ClearRows(g.board.FullRows())
	points += LineClearPoints(cleared)

	g.score += points
	g.lines += cleared
	g.pieces++

	out := Outcome{Kind: OutcomeLocked, LinesCleared: cleared, Points: points}
	if err := g.spawnNext(); err != nil {
		return out, err
	}
	return out, nil
}

func (g *Game) spawnNext() error {
	g.active = Spawn(g.queue.PopFront(), g.board.Width())
	if !g.legal(g.active) {
		g.status = StatusGameOver
		return ErrEndOfGame
	}
	return nil
}
