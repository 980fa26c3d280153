package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// highscoreMask is XORed over the stored value so the file is not a
// plain number a casual editor would bump.
const highscoreMask = 0xA5A5A5A5

// HighscoreFile persists a single best score as four obfuscated
// little-endian bytes, compatible with the classic save format.
type HighscoreFile struct {
	path string
}

// NewHighscoreFile creates a highscore store at the given path. A
// leading ~ is expanded to the user's home directory.
func NewHighscoreFile(path string) (*HighscoreFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighscoreFile{path: path}, nil
}

// Load reads the stored highscore. A missing file is not an error; it
// means no score has been saved yet and Load returns 0.
func (h *HighscoreFile) Load() (int, error) {
	data, err := os.ReadFile(h.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read highscore file: %w", err)
	}
	if len(data) != 4 {
		return 0, fmt.Errorf("storage: highscore file is corrupt: %d bytes", len(data))
	}

	raw := binary.LittleEndian.Uint32(data)
	return int(raw ^ highscoreMask), nil
}

// Save writes the highscore, creating parent directories if needed.
func (h *HighscoreFile) Save(score int) error {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(score)^highscoreMask)
	if err := os.WriteFile(h.path, buf[:], 0o644); err != nil {
		return fmt.Errorf("storage: cannot write highscore file: %w", err)
	}
	return nil
}

// Path returns the resolved on-disk location.
func (h *HighscoreFile) Path() string {
	return h.path
}
