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

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("bestScore"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v; expected absent", ok, err)
	}

	if err := store.Set("bestScore", "5"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := store.Get("bestScore")
	if err != nil || !ok || v != "5" {
		t.Fatalf("Get() = %q, %v, %v; expected \"5\"", v, ok, err)
	}

	// Overwrite is an upsert, not a second row.
	if err := store.Set("bestScore", "12"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	v, _, _ = store.Get("bestScore")
	if v != "12" {
		t.Errorf("Get() after overwrite = %q, expected \"12\"", v)
	}

	if err := store.Delete("bestScore"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("bestScore"); ok {
		t.Error("key should be absent after Delete")
	}
}

func TestStoreKeyValuePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("bestScore", "7"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get("bestScore")
	if err != nil || !ok || v != "7" {
		t.Errorf("Get() after reopen = %q, %v, %v; expected \"7\"", v, ok, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore("flappy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	for _, s := range scores {
		if s.GameID != "flappy" {
			t.Errorf("Unexpected game ID %q", s.GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveScore("flappy", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("flappy", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 15 {
		t.Errorf("Expected top score 15, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("flappy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 3)
	store.SaveScore("other", 4)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("flappy", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no flappy scores, got %d", len(scores))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Clearing one game should keep others, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveScore("flappy", 4)
	store.SaveScore("flappy", 8)

	stats, err = store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.TotalScore != 12 || stats.AvgScore != 6 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok, _ := kv.Get("bestScore"); ok {
		t.Error("new store should be empty")
	}
	kv.Set("bestScore", "3")
	kv.Set("bestScore", "4")

	v, ok, err := kv.Get("bestScore")
	if err != nil || !ok || v != "4" {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}
	if kv.Writes() != 2 {
		t.Errorf("Writes() = %d, expected 2", kv.Writes())
	}
}

func TestStoreSetIfGreater(t *testing.T) {
	tests := []struct {
		name    string
		current string
		value   int
		wrote   bool
		want    string
	}{
		{"absent", "", 3, true, "3"},
		{"lower", "5", 3, false, "5"},
		{"equal", "5", 5, false, "5"},
		{"higher", "5", 8, true, "8"},
		{"multi-digit", "9", 10, true, "10"},
		{"malformed", "abc", 1, true, "1"},
		{"fraction", "4.5", 2, true, "2"},
		{"leading space", " 7", 2, true, "2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			if tc.current != "" {
				if err := store.Set("bestScore", tc.current); err != nil {
					t.Fatalf("Set() failed: %v", err)
				}
			}

			wrote, err := store.SetIfGreater("bestScore", tc.value)
			if err != nil {
				t.Fatalf("SetIfGreater() failed: %v", err)
			}
			if wrote != tc.wrote {
				t.Errorf("wrote = %v, expected %v", wrote, tc.wrote)
			}
			if v, _, _ := store.Get("bestScore"); v != tc.want {
				t.Errorf("stored = %q, expected %q", v, tc.want)
			}
		})
	}
}

func TestMemoryKVSetIfGreater(t *testing.T) {
	kv := NewMemoryKV()

	if wrote, _ := kv.SetIfGreater("bestScore", 5); !wrote {
		t.Error("first value should be written")
	}
	if wrote, _ := kv.SetIfGreater("bestScore", 4); wrote {
		t.Error("a lower value should not be written")
	}
	if wrote, _ := kv.SetIfGreater("bestScore", 6); !wrote {
		t.Error("a higher value should be written")
	}
	if v, _, _ := kv.Get("bestScore"); v != "6" {
		t.Errorf("stored = %q, expected \"6\"", v)
	}
	if kv.Writes() != 2 {
		t.Errorf("Writes() = %d, expected 2", kv.Writes())
	}
}
