package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leafwise/gardenlog/internal/model"
	"github.com/leafwise/gardenlog/internal/storage"
)

func TestLoadNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden_log.json")
	entries, err := storage.Load(path)
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load entries = %d, want 0", len(entries))
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden_log.json")
	ts := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

	entries := []model.Entry{
		{Timestamp: ts, PlantName: "Fern", Action: "water", Notes: "soil was dry"},
		{Timestamp: ts.Add(time.Hour), PlantName: "Basil", Action: "prune", Notes: ""},
	}

	if err := storage.Save(path, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Load entries = %d, want 2", len(loaded))
	}
	if loaded[0].PlantName != "Fern" || loaded[1].Action != "prune" {
		t.Errorf("Load order/content mismatch: %+v", loaded)
	}
	if !loaded[0].Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", loaded[0].Timestamp, ts)
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden_log.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.Load(path); err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}

	// The corrupt file must be left in place for inspection.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("corrupt file should remain untouched: %v", err)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "garden_log.json")
	if err := storage.Save(path, []model.Entry{}); err != nil {
		t.Fatalf("Save into missing directories: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}
