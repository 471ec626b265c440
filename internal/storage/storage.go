package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leafwise/gardenlog/internal/model"
)

// DefaultPath returns the default log file location (~/.gardenlog/garden_log.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".gardenlog", "garden_log.json"), nil
}

// Load reads the full log from path. A missing file is not an error and
// yields an empty log; an unreadable or corrupt file is an error, so the
// caller can refuse to start instead of silently discarding history.
func Load(path string) ([]model.Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("corrupt JSON in %s (inspect or move the file before retrying): %w", path, err)
	}
	return entries, nil
}

// Save atomically rewrites the full log at path, creating parent
// directories on first write.
func Save(path string, entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
