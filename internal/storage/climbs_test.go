package storage

import (
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

func TestSaveAndListClimbs(t *testing.T) {
	store := openTestStore(t)

	records := []ClimbRecord{
		{GameID: "climb", Outcome: "lost", Score: 800, HeightRemaining: 120, Lives: 0, Elapsed: 12 * time.Second},
		{GameID: "climb", Outcome: "won", Score: 4000, HeightRemaining: 0, Lives: 2, Elapsed: 31500 * time.Millisecond},
		{GameID: "other", Outcome: "won", Score: 10, Elapsed: time.Second},
	}
	for _, rec := range records {
		if _, err := store.SaveClimb(rec); err != nil {
			t.Fatalf("SaveClimb() failed: %v", err)
		}
	}

	got, err := store.RecentClimbs("climb", 10)
	if err != nil {
		t.Fatalf("RecentClimbs() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 climbs, got %d", len(got))
	}

	// Newest first
	latest := got[0]
	if latest.Outcome != "won" || latest.Score != 4000 || latest.Lives != 2 {
		t.Errorf("Unexpected latest climb: %+v", latest)
	}
	if latest.Elapsed != 31500*time.Millisecond {
		t.Errorf("Expected elapsed 31.5s, got %v", latest.Elapsed)
	}
	if got[1].HeightRemaining != 120 {
		t.Errorf("Expected height 120, got %v", got[1].HeightRemaining)
	}
	if latest.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestRecentClimbsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveClimb(ClimbRecord{GameID: "climb", Outcome: "lost", Score: i})
	}

	got, err := store.RecentClimbs("climb", 3)
	if err != nil {
		t.Fatalf("RecentClimbs() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 climbs, got %d", len(got))
	}
	if got[0].Score != 4 || got[2].Score != 2 {
		t.Errorf("Climbs not newest first: %+v", got)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("climb")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.Wins != 0 || stats.FastestWin != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("climb", 1000)
	store.SaveScore("climb", 5000)
	store.SaveClimb(ClimbRecord{GameID: "climb", Outcome: "lost", Score: 1000, Elapsed: 5 * time.Second})
	store.SaveClimb(ClimbRecord{GameID: "climb", Outcome: "won", Score: 5000, Elapsed: 40 * time.Second})
	store.SaveClimb(ClimbRecord{GameID: "climb", Outcome: "won", Score: 4000, Elapsed: 32 * time.Second})

	stats, err = store.GetGameStats("climb")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 5000 || stats.AvgScore != 3000 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.Wins != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.Wins)
	}
	if stats.FastestWin != 32*time.Second {
		t.Errorf("Expected fastest win 32s, got %v", stats.FastestWin)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}

func TestClearScoresRemovesClimbs(t *testing.T) {
	store := openTestStore(t)

	store.SaveClimb(ClimbRecord{GameID: "climb", Outcome: "won"})
	store.SaveClimb(ClimbRecord{GameID: "other", Outcome: "won"})

	if err := store.ClearScores("climb"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	got, _ := store.RecentClimbs("climb", 10)
	if len(got) != 0 {
		t.Errorf("Expected no climbs after clear, got %d", len(got))
	}
	other, _ := store.RecentClimbs("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's climbs should survive, got %d", len(other))
	}
}
