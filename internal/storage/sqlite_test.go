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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun(RunResult{Seed: 7777, Score: 4200, Wave: 6, Block: 1, Ticks: 3600, Outcome: OutcomeGameOver})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run id %q is not a uuid: %v", runID, err)
	}

	run, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("saved run not found")
	}
	if run.Seed != 7777 || run.Score != 4200 || run.Wave != 6 || run.Block != 1 || run.Ticks != 3600 {
		t.Errorf("run = %+v", run)
	}
	if run.Outcome != OutcomeGameOver {
		t.Errorf("outcome = %s, expected gameover", run.Outcome)
	}
}

func TestSaveRunKeepsGivenIDAndDefaultsOutcome(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	got, err := store.SaveRun(RunResult{RunID: id, Score: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("run id = %s, expected %s", got, id)
	}

	run, err := store.RunByID(id)
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.Outcome != OutcomeAbandoned {
		t.Errorf("outcome = %s, expected abandoned", run.Outcome)
	}

	if _, err := store.SaveRun(RunResult{RunID: id}); err == nil {
		t.Error("duplicate run id accepted")
	}
}

func TestRunByIDUnknown(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("missing")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil, got %+v", run)
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 200, 75} {
		if _, err := store.SaveRun(RunResult{Score: score, Outcome: OutcomeGameOver}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	expected := []int{200, 200, 100}
	for i, want := range expected {
		if runs[i].Score != want {
			t.Errorf("run %d score = %d, expected %d", i, runs[i].Score, want)
		}
	}
	if runs[0].ID > runs[1].ID {
		t.Error("ties not in insertion order")
	}

	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit returned %d runs, expected 5", len(all))
	}
}

func TestHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, expected 0", high)
	}

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	runs := []RunResult{
		{Score: 1000, Wave: 4, Outcome: OutcomeGameOver},
		{Score: 90000, Wave: 60, Block: 11, Outcome: OutcomeVictory},
		{Score: 2000, Wave: 7, Outcome: OutcomeAbandoned},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90000 {
		t.Errorf("high score = %d, expected 90000", high)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Victories != 1 || stats.BestWave != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 31000 {
		t.Errorf("avg score = %v, expected 31000", stats.AvgScore)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunResult{Score: 5}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty log, got %d runs", len(runs))
	}
}
