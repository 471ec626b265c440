package diagnose_test

import (
	"strings"
	"testing"

	"github.com/leafwise/gardenlog/internal/diagnose"
)

func TestDiagnoseSingleMatch(t *testing.T) {
	tests := []struct {
		symptoms  string
		wantCause string
	}{
		{"Leaves are turning yellow at the bottom", "Nutrient deficiency or overwatering"},
		{"Brown crispy tips on the fronds", "Low humidity or underwatering"},
		{"Black spots spreading across the leaves", "Fungal or bacterial leaf spot"},
		{"White powdery coating on the foliage", "Powdery mildew"},
		{"Stem feels mushy near the base", "Root or stem rot (usually overwatering)"},
		{"Tiny green aphids clustered on the buds", "Pest infestation"},
		{"Scale on the underside of leaves", "Pest infestation"},
	}
	for _, tt := range tests {
		got := diagnose.Diagnose(tt.symptoms)
		if len(got.Findings) != 1 {
			t.Errorf("Diagnose(%q) findings = %d, want 1", tt.symptoms, len(got.Findings))
			continue
		}
		if got.Findings[0].Cause != tt.wantCause {
			t.Errorf("Diagnose(%q) cause = %q, want %q", tt.symptoms, got.Findings[0].Cause, tt.wantCause)
		}
		if got.Summary != tt.wantCause {
			t.Errorf("Diagnose(%q) summary = %q, want %q", tt.symptoms, got.Summary, tt.wantCause)
		}
	}
}

func TestDiagnoseMultipleMatches(t *testing.T) {
	got := diagnose.Diagnose("Yellow leaves, soft mushy stems, and mites everywhere")
	if len(got.Findings) != 3 {
		t.Fatalf("findings = %d, want 3: %+v", len(got.Findings), got.Findings)
	}
	if !strings.Contains(got.Summary, "; ") {
		t.Errorf("summary should join causes with '; ': %q", got.Summary)
	}
	if strings.Count(got.Advice, "\n\n") != 2 {
		t.Errorf("advice should contain one block per finding:\n%s", got.Advice)
	}
}

func TestDiagnoseNoMatch(t *testing.T) {
	got := diagnose.Diagnose("It just looks a bit sad")
	if len(got.Findings) != 0 {
		t.Fatalf("findings = %+v, want none", got.Findings)
	}
	if got.Summary != "No clear match from the symptom rules." {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Advice == "" {
		t.Error("no-match result must still carry generic advice")
	}
}

func TestDiagnoseCaseInsensitive(t *testing.T) {
	lower := diagnose.Diagnose("yellow leaf")
	upper := diagnose.Diagnose("YELLOW LEAF")
	if lower.Summary != upper.Summary {
		t.Errorf("case sensitivity: %q vs %q", lower.Summary, upper.Summary)
	}
}
