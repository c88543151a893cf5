package storage

import (
	"database/sql"
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

func save(t *testing.T, store *Store, gameID string, score, level int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreRecord{GameID: gameID, Score: score, Level: level, Player: "tester"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", 100, 1)
	save(t, store, "bomber", 50, 1)
	save(t, store, "bomber", 200, 2)
	save(t, store, "bomber_classic", 500, 3)

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 2 || scores[0].Player != "tester" {
		t.Errorf("record fields not stored: %+v", scores[0])
	}

	classic, err := store.TopScores("bomber_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresTieBreakByLevel(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", 300, 2)
	save(t, store, "bomber", 300, 4)

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 4 {
		t.Errorf("equal scores should rank the deeper run first, got level %d", scores[0].Level)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "bomber", (i+1)*100, 1)
	}

	scores, err := store.TopScores("bomber", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreRecord{GameID: "bomber", Score: 10}); err != nil {
		t.Fatal(err)
	}
	scores, _ := store.TopScores("bomber", 1)
	if _, err := uuid.Parse(scores[0].RunID); err != nil {
		t.Errorf("generated run id %q is not a UUID: %v", scores[0].RunID, err)
	}

	runID := uuid.NewString()
	if _, err := store.SaveScore(ScoreRecord{GameID: "bomber", Score: 20, Level: 3, RunID: runID}); err != nil {
		t.Fatal(err)
	}
	rec, err := store.ScoreByRun(runID)
	if err != nil || rec == nil {
		t.Fatalf("ScoreByRun() = %v, %v", rec, err)
	}
	if rec.Score != 20 || rec.Level != 3 {
		t.Errorf("unexpected record %+v", rec)
	}

	missing, err := store.ScoreByRun("nope")
	if err != nil || missing != nil {
		t.Errorf("unknown run = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreRejectsMissingGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreRecord{Score: 1}); err == nil {
		t.Error("expected error for record without game id")
	}
}

func TestStoreHighScoreAndBestLevel(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
	best, err := store.BestLevel("bomber")
	if err != nil || best != 0 {
		t.Errorf("BestLevel() on empty = %d, %v", best, err)
	}

	save(t, store, "bomber", 100, 5)
	save(t, store, "bomber", 300, 2)
	save(t, store, "bomber", 200, 3)

	if high, _ = store.HighScore("bomber"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if best, _ = store.BestLevel("bomber"); best != 5 {
		t.Errorf("Expected best level 5, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", 100, 1)
	save(t, store, "bomber", 200, 1)
	save(t, store, "bomber_classic", 300, 1)

	if err := store.ClearScores("bomber"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("bomber", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("bomber_classic", 10); len(scores) != 1 {
		t.Errorf("Classic scores should not be affected by clearing bomber")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "bomber", i*10, 1)
	}

	scores, err := store.AllScores("bomber")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", 100, 1)
	save(t, store, "bomber", 300, 4)
	save(t, store, "bomber_classic", 50, 2)

	stats, err := store.GetGameStats("bomber")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 4 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}

	empty, err := store.GetGameStats("unknown")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["bomber_classic"].BestLevel != 2 {
		t.Errorf("unexpected all-games stats %v", all)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('bomber', 42);`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 || scores[0].Level != 0 {
		t.Errorf("old rows should survive migration: %+v", scores)
	}
	save(t, store, "bomber", 7, 2)
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
