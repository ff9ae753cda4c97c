package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun("tetris", 1200, 8)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.ID == 0 {
		t.Error("expected a database ID")
	}
	if _, err := uuid.Parse(run.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", run.RunID, err)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.GameID != "tetris" || got.Score != 1200 || got.Lines != 8 {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreSaveRunRejectsNegative(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("tetris", -1, 0); err == nil {
		t.Error("negative score should be rejected")
	}
	if _, err := store.SaveRun("tetris", 0, -3); err == nil {
		t.Error("negative lines should be rejected")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RunByID(uuid.NewString()); err == nil {
		t.Error("expected an error for an unknown run")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		game  string
		score int
		lines int
	}{
		{"tetris", 100, 1},
		{"tetris", 50, 0},
		{"tetris", 200, 2},
		{"tetris", 200, 5},
		{"tetris_wide", 500, 4},
	} {
		if _, err := store.SaveRun(r.game, r.score, r.lines); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("expected 4 runs, got %d", len(runs))
	}

	wantScores := []int{200, 200, 100, 50}
	for i, want := range wantScores {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, want)
		}
	}
	// Equal scores: more lines first.
	if runs[0].Lines != 5 {
		t.Errorf("tie broken wrong: first run has %d lines", runs[0].Lines)
	}

	wide, err := store.TopScores("tetris_wide", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(wide) != 1 || wide[0].Score != 500 {
		t.Errorf("unexpected wide runs: %+v", wide)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun("tetris", i*10, i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopScores("tetris", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Fatalf("expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 190 {
		t.Errorf("expected top score 190, got %d", runs[0].Score)
	}

	// A non-positive limit falls back to ten.
	runs, err = store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("expected 10 runs, got %d", len(runs))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 10, 20} {
		if _, err := store.SaveRun("tetris", score, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("tetris", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 20 || runs[1].Score != 10 {
		t.Errorf("unexpected recent runs: %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty table, got %d", high)
	}

	store.SaveRun("tetris", 100, 1)
	store.SaveRun("tetris", 300, 3)
	store.SaveRun("tetris", 200, 2)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("tetris", 100, 1)
	store.SaveRun("tetris_wide", 200, 2)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runs, _ := store.TopScores("tetris", 10)
	if len(runs) != 0 {
		t.Errorf("expected no tetris runs after clear, got %d", len(runs))
	}
	runs, _ = store.TopScores("tetris_wide", 10)
	if len(runs) != 1 {
		t.Errorf("clearing one variant touched another: %d runs left", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty variant: %+v", empty)
	}

	store.SaveRun("tetris", 100, 1)
	store.SaveRun("tetris", 300, 4)
	store.SaveRun("tetris_wide", 50, 0)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.TotalLines != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("expected average 200, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 variants, got %d", len(all))
	}
	if all["tetris_wide"].HighScore != 50 {
		t.Errorf("unexpected wide stats: %+v", all["tetris_wide"])
	}
}
