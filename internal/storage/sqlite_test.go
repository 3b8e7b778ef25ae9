package storage

import (
	"fmt"
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

func saveResult(t *testing.T, store *Store, player string, score int) {
	t.Helper()
	_, err := store.SaveResult(Result{
		SessionID:  fmt.Sprintf("%s-%d-%d", player, score, time.Now().UnixNano()),
		Player:     player,
		Difficulty: "normal",
		Score:      score,
		Lines:      score / 100,
		Level:      score/1000 + 1,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{
		SessionID:  "abc",
		Player:     "alice",
		Difficulty: "hard",
		Score:      1200,
		Lines:      11,
		Level:      2,
		Pieces:     40,
		Duration:   95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	r, err := store.ResultBySession("abc")
	if err != nil {
		t.Fatalf("ResultBySession() failed: %v", err)
	}
	if r == nil {
		t.Fatal("Expected result, got nil")
	}
	if r.Player != "alice" || r.Difficulty != "hard" {
		t.Errorf("Unexpected identity: %+v", r)
	}
	if r.Score != 1200 || r.Lines != 11 || r.Level != 2 || r.Pieces != 40 {
		t.Errorf("Unexpected counters: %+v", r)
	}
	if r.Duration != 95*time.Second {
		t.Errorf("Expected duration 95s, got %v", r.Duration)
	}

	missing, err := store.ResultBySession("nope")
	if err != nil {
		t.Fatalf("ResultBySession() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown session, got %+v", missing)
	}
}

func TestStoreRejectsDuplicateSession(t *testing.T) {
	store := openTestStore(t)

	r := Result{SessionID: "same", Player: "bob", Difficulty: "normal", Score: 10}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("Expected error saving the same session twice")
	}
	if _, err := store.SaveResult(Result{Player: "bob"}); err == nil {
		t.Error("Expected error saving without session id")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	saveResult(t, store, "alice", 100)
	saveResult(t, store, "alice", 50)
	saveResult(t, store, "alice", 200)
	saveResult(t, store, "bob", 500)

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(all))
	}
	if all[0].Score != 500 || all[0].Player != "bob" {
		t.Errorf("Expected bob's 500 first, got %+v", all[0])
	}

	alice, err := store.TopScores("alice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(alice) != 3 {
		t.Fatalf("Expected 3 results for alice, got %d", len(alice))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if alice[i].Score != w {
			t.Errorf("alice[%d] = %d, want %d", i, alice[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveResult(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	saveResult(t, store, "first", 300)
	saveResult(t, store, "second", 100)

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recent))
	}
	if recent[0].Player != "second" {
		t.Errorf("Expected newest result first, got %s", recent[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	saveResult(t, store, "a", 100)
	saveResult(t, store, "b", 300)
	saveResult(t, store, "a", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveResult(t, store, "a", 100)
	saveResult(t, store, "b", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	saveResult(t, store, "alice", 1000)
	saveResult(t, store, "alice", 3000)
	saveResult(t, store, "bob", 500)

	stats, err := store.GetStats("alice")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 3000 {
		t.Errorf("Expected high score 3000, got %d", stats.HighScore)
	}
	if stats.AvgScore != 2000 {
		t.Errorf("Expected average 2000, got %f", stats.AvgScore)
	}
	if stats.TotalLines != 40 {
		t.Errorf("Expected 40 total lines, got %d", stats.TotalLines)
	}
	if stats.BestLevel != 4 {
		t.Errorf("Expected best level 4, got %d", stats.BestLevel)
	}

	all, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if all.GamesCount != 3 {
		t.Errorf("Expected 3 games overall, got %d", all.GamesCount)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveResult(t, store, "a", 12345)
	store.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() second time failed: %v", err)
	}
	defer store2.Close()

	high, err := store2.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12345 {
		t.Errorf("Expected persisted score 12345, got %d", high)
	}
}
