package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/leafwise/gardenlog/internal/model"
)

func TestStatusForEntry(t *testing.T) {
	ts := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	got := statusForEntry(model.Entry{Timestamp: ts, PlantName: "Fern", Action: "watered"})
	if !strings.Contains(got, "Next due 2026-08-23") {
		t.Errorf("statusForEntry = %q, want next-due hint", got)
	}

	got = statusForEntry(model.Entry{Timestamp: ts, PlantName: "Fern", Action: "care review"})
	if strings.Contains(got, "Next due") {
		t.Errorf("statusForEntry = %q, want no next-due hint for rule-less action", got)
	}
}
