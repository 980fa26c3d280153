package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{7, 2, 12} {
		if _, err := store.SaveRound(score, 45*time.Second); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Should be sorted descending
	if rounds[0].Score != 12 || rounds[1].Score != 7 || rounds[2].Score != 2 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}

	if rounds[0].Duration != 45*time.Second {
		t.Errorf("Expected duration of 45s, got %v", rounds[0].Duration)
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRound((i+1)*10, time.Minute)
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}

	if rounds[0].Score != 50 || rounds[1].Score != 40 || rounds[2].Score != 30 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No rounds yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty log, got %d", high)
	}

	store.SaveRound(10, time.Minute)
	store.SaveRound(30, time.Minute)
	store.SaveRound(20, time.Minute)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRounds(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRound(10, time.Minute)
	store.SaveRound(20, time.Minute)

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.TopRounds(10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRound(10, time.Minute)
	store.SaveRound(20, time.Minute)
	store.SaveRound(30, time.Minute)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.RoundsCount != 3 {
		t.Errorf("Expected 3 rounds, got %d", stats.RoundsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score of 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average of 20, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("Expected total of 60, got %d", stats.TotalScore)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
