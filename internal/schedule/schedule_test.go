package schedule_test

import (
	"testing"
	"time"

	"github.com/leafwise/gardenlog/internal/schedule"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  schedule.Action
	}{
		{"water", schedule.ActionWater},
		{"watered", schedule.ActionWater},
		{"Deep watering", schedule.ActionWater},
		{"fertilized", schedule.ActionFertilize},
		{"fertilised", schedule.ActionFertilize},
		{"pruned", schedule.ActionPrune},
		{"trimmed dead leaves", schedule.ActionPrune},
		{"repotted", schedule.ActionRepot},
		{"care review", schedule.ActionUnknown},
		{"diagnosis", schedule.ActionUnknown},
		{"", schedule.ActionUnknown},
	}
	for _, tt := range tests {
		got := schedule.ParseAction(tt.input)
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		action schedule.Action
		want   time.Duration
		ok     bool
	}{
		{schedule.ActionWater, 3 * 24 * time.Hour, true},
		{schedule.ActionFertilize, 28 * 24 * time.Hour, true},
		{schedule.ActionPrune, 56 * 24 * time.Hour, true},
		{schedule.ActionRepot, 180 * 24 * time.Hour, true},
		{schedule.ActionUnknown, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.action.Interval()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Interval(%v) = (%v, %v), want (%v, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNextDue(t *testing.T) {
	last := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	due, ok := schedule.NextDue(last, "watered")
	if !ok {
		t.Fatal("NextDue: expected a rule for 'watered'")
	}
	want := last.Add(3 * 24 * time.Hour)
	if !due.Equal(want) {
		t.Errorf("NextDue = %v, want %v", due, want)
	}

	if _, ok := schedule.NextDue(last, "admired"); ok {
		t.Error("NextDue: expected no rule for 'admired'")
	}
}
