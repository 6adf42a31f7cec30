package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
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

func TestStoreHighScoreDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}
}

func TestStoreSetHighScore(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{50, 80, 20} {
		if err := store.SetHighScore(score); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", score, err)
		}
	}

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	// The store replaces the value; keeping the maximum is the caller's job.
	if score != 20 {
		t.Errorf("Expected last written value 20, got %d", score)
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore(42); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	score, err := reopened.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Expected 42 after reopen, got %d", score)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock()

	for _, score := range []int{100, 50, 200, 100} {
		if err := store.SaveRun(score, score*10); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	want := []int{200, 100, 100}
	for i, run := range runs {
		if run.Score != want[i] {
			t.Errorf("runs[%d].Score = %d, want %d", i, run.Score, want[i])
		}
		if run.Ticks != run.Score*10 {
			t.Errorf("runs[%d].Ticks = %d, want %d", i, run.Ticks, run.Score*10)
		}
		if run.ID == "" {
			t.Errorf("runs[%d] has empty ID", i)
		}
	}
	// Equal scores: the earlier run ranks first.
	if !runs[1].CreatedAt.Before(runs[2].CreatedAt) {
		t.Errorf("Expected earlier run first on ties, got %v then %v", runs[1].CreatedAt, runs[2].CreatedAt)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock()

	for i := 1; i <= 25; i++ {
		if err := store.SaveRun(i, i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Fatalf("Expected default limit of 20, got %d", len(runs))
	}
	if runs[0].Score != 25 || runs[19].Score != 6 {
		t.Errorf("Expected newest first (25..6), got %d..%d", runs[0].Score, runs[19].Score)
	}
	want := time.Date(2025, 3, 1, 12, 0, 25, 0, time.UTC)
	if !runs[0].CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", runs[0].CreatedAt, want)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock()

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Best != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, score := range []int{10, 20, 60} {
		if err := store.SaveRun(score, 100); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Best != 60 {
		t.Errorf("Best = %d, want 60", stats.Best)
	}
	if stats.AvgScore != 30 {
		t.Errorf("AvgScore = %v, want 30", stats.AvgScore)
	}
	if stats.TotalTicks != 300 {
		t.Errorf("TotalTicks = %d, want 300", stats.TotalTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.SaveRun(i, i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if err := store.SetHighScore(4); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	deleted, err := store.ClearRuns()
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if deleted != 5 {
		t.Errorf("Expected 5 deleted, got %d", deleted)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 4 {
		t.Errorf("High score should survive ClearRuns, got %d", score)
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.flappy/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".flappy", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	got, err = ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q, %v", got, err)
	}
}
