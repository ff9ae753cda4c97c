package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// scriptedGame ends on the tick given by endAt and records what the model sent it.
type scriptedGame struct {
	endAt   int
	ticks   int
	resets  int
	resized [2]int
	inputs  []core.InputFrame
	state   core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}

	var res core.StepResult
	if g.ticks == g.endAt {
		g.state = core.GameState{Score: 420, Lines: 3, GameOver: true}
		res.Ended = true
	}
	res.State = g.state
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }
func (g *scriptedGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelForwardsActionsOnTick(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, TickMsg{})

	if len(g.inputs) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.inputs))
	}
	in := g.inputs[0]
	if !in.Has(core.ActionLeft) || !in.Has(core.ActionHardDrop) {
		t.Errorf("frame missing actions: %+v", in.Actions)
	}

	// The frame is cleared after each tick.
	step(t, m, TickMsg{})
	if !g.inputs[1].Empty() {
		t.Errorf("second frame should be empty: %+v", g.inputs[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.DefaultConfig(), quietLogger())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &scriptedGame{endAt: 3}
	m := NewModel(g, nil, core.DefaultConfig(), quietLogger())
	m.Init()

	m = step(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("b while playing should not leave")
	}

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b while paused should go back")
	}
}

func TestModelEscLeavesFinishedGame(t *testing.T) {
	g := &scriptedGame{endAt: 1}
	m := NewModel(g, nil, core.DefaultConfig(), quietLogger())
	m.quitOnBack = true
	m.Init()

	m = step(t, m, TickMsg{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("standalone model should quit on back")
	}
	if !next.(Model).Result().Back {
		t.Error("result should report back")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAt: 2}
	m := NewModel(g, store, core.DefaultConfig(), quietLogger())
	m.Init()

	for range 5 {
		m = step(t, m, TickMsg{})
	}

	res := m.Result()
	if res.Run == nil {
		t.Fatal("run was not saved")
	}
	if res.Score != 420 || res.Lines != 3 {
		t.Errorf("unexpected result: %+v", res)
	}

	runs, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Lines != 3 || runs[0].RunID != res.Run.RunID {
		t.Errorf("unexpected stored runs: %+v", runs)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, core.DefaultConfig(), quietLogger())
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize should not reset a Resizer, resets = %d", g.resets)
	}
	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should contain the game frame")
	}
}
