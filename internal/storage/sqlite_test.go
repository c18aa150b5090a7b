package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Pilot: "greedy", Seed: 1, Score: 100, Level: 2, Frames: 3000},
		{Pilot: "greedy", Seed: 2, Score: 50, Level: 1, Frames: 900, GameOver: true},
		{Pilot: "greedy", Seed: 3, Score: 200, Level: 3, Frames: 3000, Difficulty: "hard"},
		{Pilot: "wander", Seed: 1, Score: 500, Level: 4, Frames: 3000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("greedy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Difficulty != "hard" || top[1].Difficulty != "normal" {
		t.Errorf("difficulty not stored: %q, %q", top[0].Difficulty, top[1].Difficulty)
	}
	if !top[2].GameOver || top[2].Seed != 2 || top[2].Frames != 900 {
		t.Errorf("run fields not round-tripped: %+v", top[2])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Pilot != "wander" {
		t.Errorf("TopRuns(all) = %v", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(RunRecord{Pilot: "test", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("greedy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for a pilot without runs, got %d", high)
	}

	store.SaveRun(RunRecord{Pilot: "greedy", Score: 100})
	store.SaveRun(RunRecord{Pilot: "greedy", Score: 300})
	store.SaveRun(RunRecord{Pilot: "greedy", Score: 200})

	high, err = store.HighScore("greedy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Pilot: "greedy", Score: 100})
	store.SaveRun(RunRecord{Pilot: "greedy", Score: 200})
	store.SaveRun(RunRecord{Pilot: "idle", Score: 3})

	if err := store.ClearRuns("greedy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("greedy", 10); len(runs) != 0 {
		t.Errorf("Expected 0 greedy runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("idle", 10); len(runs) != 1 {
		t.Errorf("idle runs should not be affected by clearing greedy")
	}
}

func TestStorePilotStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Pilot: "greedy", Score: 10, Level: 1, GameOver: true})
	store.SaveRun(RunRecord{Pilot: "greedy", Score: 30, Level: 3})
	store.SaveRun(RunRecord{Pilot: "wander", Score: 4, Level: 1, GameOver: true})

	stats, err := store.GetPilotStats("greedy")
	if err != nil {
		t.Fatalf("GetPilotStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestLevel != 3 || stats.GameOvers != 1 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}

	empty, err := store.GetPilotStats("idle")
	if err != nil {
		t.Fatalf("GetPilotStats(idle) failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastRun.IsZero() {
		t.Errorf("stats for a pilot without runs = %+v", empty)
	}

	all, err := store.GetAllPilotStats()
	if err != nil {
		t.Fatalf("GetAllPilotStats() failed: %v", err)
	}
	if len(all) != 2 || all["wander"].Runs != 1 {
		t.Errorf("GetAllPilotStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
