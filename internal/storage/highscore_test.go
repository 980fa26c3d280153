package storage

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestHighscoreRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "highscore.dat")

	hs, err := NewHighscoreFile(path)
	if err != nil {
		t.Fatalf("NewHighscoreFile() failed: %v", err)
	}

	for _, score := range []int{0, 1, 42, 1<<31 - 1} {
		if err := hs.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
		got, err := hs.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if got != score {
			t.Errorf("Load() = %d after Save(%d)", got, score)
		}
	}
}

func TestHighscoreMissingFile(t *testing.T) {
	hs, err := NewHighscoreFile(filepath.Join(t.TempDir(), "nope.dat"))
	if err != nil {
		t.Fatalf("NewHighscoreFile() failed: %v", err)
	}

	got, err := hs.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Expected 0 for missing file, got %d", got)
	}
}

func TestHighscoreObfuscation(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "highscore.dat")

	hs, err := NewHighscoreFile(path)
	if err != nil {
		t.Fatalf("NewHighscoreFile() failed: %v", err)
	}
	if err := hs.Save(1000); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("Expected 4 bytes on disk, got %d", len(data))
	}

	// The raw value must not appear in plaintext
	if binary.LittleEndian.Uint32(data) == 1000 {
		t.Error("Score stored in plaintext")
	}
	if binary.LittleEndian.Uint32(data)^highscoreMask != 1000 {
		t.Error("Stored bytes do not decode to the saved score")
	}
}

func TestHighscoreCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "highscore.dat")

	if err := os.WriteFile(path, []byte{1, 2}, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	hs, err := NewHighscoreFile(path)
	if err != nil {
		t.Fatalf("NewHighscoreFile() failed: %v", err)
	}
	if _, err := hs.Load(); err == nil {
		t.Error("Expected an error for a truncated file")
	}
}

func TestHighscoreCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "deep", "nested", "highscore.dat")

	hs, err := NewHighscoreFile(path)
	if err != nil {
		t.Fatalf("NewHighscoreFile() failed: %v", err)
	}
	if err := hs.Save(7); err != nil {
		t.Fatalf("Save() into nested path failed: %v", err)
	}

	got, err := hs.Load()
	if err != nil || got != 7 {
		t.Errorf("Load() = %d, %v; expected 7", got, err)
	}
}
