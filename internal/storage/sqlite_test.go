package storage

import (
	"os"
	"path/filepath"
	"strings"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("bubblepop", "normal", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("bubblepop", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected 42 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		mode  string
		score int
	}{
		{"normal", 10},
		{"normal", 5},
		{"normal", 20},
		{"hard", 50},
	}
	for _, s := range saves {
		if _, err := store.SaveScore("bubblepop", s.mode, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("bubblepop", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 normal scores, got %d", len(scores))
	}
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w || scores[i].Mode != "normal" {
			t.Errorf("scores[%d] = %+v, expected %d on normal", i, scores[i], w)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	all, err := store.TopScores("bubblepop", AnyMode, 10)
	if err != nil {
		t.Fatalf("TopScores(AnyMode) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 50 {
		t.Errorf("AnyMode should merge modes, got %+v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "normal", (i+1)*100)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"top 3", 3, 3},
		{"more than stored", 50, 5},
		{"zero means default", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("test", "normal", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("Expected %d scores, got %d", tt.want, len(scores))
			}
			if scores[0].Score != 500 {
				t.Errorf("Expected 500 first, got %d", scores[0].Score)
			}
		})
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("bubblepop", "easy", 7)
	store.SaveScore("bubblepop", "easy", 7)

	scores, err := store.TopScores("bubblepop", "easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first {
		t.Errorf("Earlier score should rank first on ties, got id %d", scores[0].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bubblepop", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("bubblepop", "normal", 10)
	store.SaveScore("bubblepop", "normal", 30)
	store.SaveScore("bubblepop", "hard", 90)

	if high, _ = store.HighScore("bubblepop", "normal"); high != 30 {
		t.Errorf("Expected normal high score of 30, got %d", high)
	}
	if high, _ = store.HighScore("bubblepop", AnyMode); high != 90 {
		t.Errorf("Expected overall high score of 90, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bubblepop", "normal", 100)
	store.SaveScore("bubblepop", "hard", 200)
	store.SaveScore("other", "normal", 300)

	if err := store.ClearScores("bubblepop", "normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("bubblepop", "normal", 10); len(scores) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("bubblepop", "hard", 10); len(scores) != 1 {
		t.Error("Hard scores should not be affected by clearing normal")
	}

	if err := store.ClearScores("bubblepop", AnyMode); err != nil {
		t.Fatalf("ClearScores(AnyMode) failed: %v", err)
	}
	if scores, _ := store.TopScores("bubblepop", AnyMode, 10); len(scores) != 0 {
		t.Errorf("Expected no bubblepop scores, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", AnyMode, 10); len(scores) != 1 {
		t.Error("Other games should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("bubblepop", "normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("bubblepop", "normal", 10)
	store.SaveScore("bubblepop", "normal", 20)
	store.SaveScore("bubblepop", "easy", 3)

	stats, err := store.GetGameStats("bubblepop", "normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 || stats.TotalScore != 30 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	byMode, err := store.ModeStats("bubblepop")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if len(byMode) != 2 {
		t.Fatalf("Expected 2 modes, got %d", len(byMode))
	}
	if byMode["easy"].GamesCount != 1 || byMode["easy"].HighScore != 3 {
		t.Errorf("Unexpected easy stats: %+v", byMode["easy"])
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

	got, err := ExpandHome("~/.bubblepop/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".bubblepop", "scores.db")) {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
