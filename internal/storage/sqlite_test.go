package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestHighScoreDefaultsToZero(t *testing.T) {
	store := openTemp(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("HighScore() = %d, expected 0", hs)
	}
}

func TestHighScoreOverwrite(t *testing.T) {
	store := openTemp(t)

	for _, v := range []int{1200, 5400, 3000} {
		if err := store.SetHighScore(v); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", v, err)
		}
	}

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	// The store keeps the last write; monotonicity is the caller's rule.
	if hs != 3000 {
		t.Errorf("HighScore() = %d, expected 3000", hs)
	}
}

func TestHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetHighScore(9100); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	hs, err := store.HighScore()
	if err != nil || hs != 9100 {
		t.Errorf("HighScore() = %d, %v, expected 9100", hs, err)
	}
}

func TestRecordAndQueryRuns(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Mode: "campaign", Level: 1, Score: 6500, Stars: 2, Outcome: "won"},
		{Mode: "infinite", Round: 4, Score: 8800, Outcome: "lost"},
		{Mode: "infinite", Round: 9, Score: 21000, Outcome: "lost"},
		{Mode: "campaign", Level: 2, Score: 1800, Outcome: "lost"},
	}
	for _, r := range runs {
		id, err := store.RecordRun(r)
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("RecordRun() id %q is not a UUID: %v", id, err)
		}
	}

	best, err := store.BestRuns("infinite", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("len(BestRuns) = %d, expected 2", len(best))
	}
	if best[0].Score != 21000 || best[0].Round != 9 {
		t.Errorf("BestRuns[0] = %+v, expected round 9 with 21000", best[0])
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("len(RecentRuns) = %d, expected 3", len(recent))
	}

	stats, err := store.Stats("campaign")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 6500 || stats.AvgScore != 4150 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestRecordRunKeepsGivenID(t *testing.T) {
	store := openTemp(t)
	id := uuid.NewString()

	got, err := store.RecordRun(Run{ID: id, Mode: "infinite", Round: 1, Score: 10, Outcome: "lost"})
	if err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Errorf("RecordRun() = %q, expected %q", got, id)
	}
	if _, err := store.RecordRun(Run{ID: id, Mode: "infinite", Outcome: "lost"}); err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestClearRuns(t *testing.T) {
	store := openTemp(t)
	store.RecordRun(Run{Mode: "infinite", Score: 100, Outcome: "lost"})
	store.RecordRun(Run{Mode: "campaign", Score: 200, Outcome: "won"})
	store.SetHighScore(100)

	if err := store.ClearRuns("infinite"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.BestRuns("infinite", 10)
	if len(runs) != 0 {
		t.Errorf("infinite runs = %d after clear, expected 0", len(runs))
	}
	runs, _ = store.BestRuns("campaign", 10)
	if len(runs) != 1 {
		t.Errorf("campaign runs = %d, expected 1", len(runs))
	}
	if hs, _ := store.HighScore(); hs != 100 {
		t.Errorf("HighScore() = %d after clear, expected 100", hs)
	}
}
