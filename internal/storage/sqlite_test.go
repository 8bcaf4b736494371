package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []float64{12.5, 3.25, 40.75} {
		if _, err := store.SaveScore("survival", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("survival_belt", 99); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("survival", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []float64{40.75, 12.5, 3.25}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %f, expected %f", i, scores[i].Score, w)
		}
	}

	belt, err := store.TopScores("survival_belt", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(belt) != 1 {
		t.Errorf("Expected 1 belt score, got %d", len(belt))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("survival", float64(i+1)*1.5)
	}

	scores, err := store.TopScores("survival", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 7.5 || scores[1].Score != 6 || scores[2].Score != 4.5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("survival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty game, got %f", high)
	}

	store.SaveScore("survival", 10)
	store.SaveScore("survival", 30.5)
	store.SaveScore("survival", 20)

	high, err = store.HighScore("survival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30.5 {
		t.Errorf("Expected 30.5, got %f", high)
	}
}

func TestStoreCommitBest(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name   string
		commit float64
		want   float64
	}{
		{"first commit", 12.5, 12.5},
		{"lower is ignored", 4, 12.5},
		{"higher replaces", 20.25, 20.25},
		{"equal keeps", 20.25, 20.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.CommitBest("survival", tc.commit); err != nil {
				t.Fatalf("CommitBest() failed: %v", err)
			}
			got, err := store.BestScore("survival")
			if err != nil {
				t.Fatalf("BestScore() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("BestScore() = %f, expected %f", got, tc.want)
			}
		})
	}

	other, err := store.BestScore("survival_belt")
	if err != nil || other != 0 {
		t.Errorf("untouched game best = %f, err %v", other, err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("survival", 1)
	store.SaveScore("survival", 2)
	store.SaveScore("survival_belt", 3)
	store.CommitBest("survival", 2)

	if err := store.ClearScores("survival"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("survival", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore("survival"); best != 0 {
		t.Errorf("best should be cleared, got %f", best)
	}
	if belt, _ := store.TopScores("survival_belt", 10); len(belt) != 1 {
		t.Error("belt scores should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("survival", float64(i))
	}

	scores, err := store.AllScores("survival")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("survival", 10)
	store.SaveScore("survival", 20)
	store.SaveScore("survival_belt", 5)

	stats, err := store.GetGameStats("survival")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 || stats.TotalScore != 30 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["survival_belt"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
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

func TestHighScoresAdapter(t *testing.T) {
	store := openTestStore(t)
	hs := NewHighScores(store, "survival", nil)

	best, err := hs.LoadHighScore()
	if err != nil || best != 0 {
		t.Fatalf("LoadHighScore() = %f, %v", best, err)
	}
	if err := hs.CommitHighScore(8.5); err != nil {
		t.Fatalf("CommitHighScore() failed: %v", err)
	}
	if best, _ := hs.LoadHighScore(); best != 8.5 {
		t.Errorf("best = %f, expected 8.5", best)
	}
}

func TestHighScoresAdapterLogsFailures(t *testing.T) {
	store := openTestStore(t)
	store.Close()

	var buf bytes.Buffer
	hs := NewHighScores(store, "survival", log.New(&buf))

	if _, err := hs.LoadHighScore(); err == nil {
		t.Error("load from a closed store should fail")
	}
	if err := hs.CommitHighScore(1); err == nil {
		t.Error("commit to a closed store should fail")
	}
	if !strings.Contains(buf.String(), "commit high score failed") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestAdaptersWithoutStore(t *testing.T) {
	if _, err := NewHighScores(nil, "survival", nil).LoadHighScore(); !errors.Is(err, ErrNoStore) {
		t.Errorf("expected ErrNoStore, got %v", err)
	}
	if err := NewGdataHighScores(nil, "survival", nil).CommitHighScore(1); !errors.Is(err, ErrNoStore) {
		t.Errorf("expected ErrNoStore, got %v", err)
	}
}
