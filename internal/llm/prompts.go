package llm

import (
	"fmt"
	"strings"

	"github.com/leafwise/gardenlog/internal/model"
)

// CarePlanPrompt asks the model to rewrite a generated care plan for a
// beginner gardener.
func CarePlanPrompt(plan string) string {
	return "Rewrite the following plant care plan so it is very clear, friendly, and easy to follow for a beginner gardener. " +
		"Keep all important details, but feel free to organize it with headings and bullet points.\n\n" +
		plan
}

// DiagnosisSummaryPrompt asks the model to rewrite a rule-based diagnosis
// summary.
func DiagnosisSummaryPrompt(symptoms, summary string) string {
	return fmt.Sprintf("User symptoms: %s\n\nRule-based summary: %s\n\n"+
		"Rewrite the summary in clear, friendly language for a home gardener.", symptoms, summary)
}

// DiagnosisAdvicePrompt asks the model to rewrite rule-based advice as
// step-by-step instructions.
func DiagnosisAdvicePrompt(symptoms, advice string) string {
	return fmt.Sprintf("User symptoms: %s\n\nRule-based advice:\n%s\n\n"+
		"Rewrite this advice as clear, step-by-step instructions for a beginner gardener.", symptoms, advice)
}

// maxSuggestEntries bounds how much log context goes into the task
// suggestion prompt.
const maxSuggestEntries = 5

// SuggestTaskPrompt builds the prompt asking for one upcoming task based
// on recent log entries (most recent first).
func SuggestTaskPrompt(recent []model.Entry) string {
	if len(recent) > maxSuggestEntries {
		recent = recent[:maxSuggestEntries]
	}
	lines := make([]string, 0, len(recent))
	for _, e := range recent {
		line := fmt.Sprintf("- %s: %s - %s", e.Timestamp.Format("2006-01-02 15:04"), e.PlantName, e.Action)
		if e.Notes != "" {
			line += fmt.Sprintf(" (Notes: %s)", e.Notes)
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(`Based on the following recent gardening log entries, suggest ONE upcoming task or reminder that would be helpful for the gardener.

Recent log entries:
%s

Consider:
- What plants might need attention soon based on their care patterns
- Any follow-up actions based on recent activities
- Seasonal or routine maintenance that might be due

Provide a concise, actionable task in 1-2 sentences. Format: "Task: [action needed] - [brief explanation]"
`, strings.Join(lines, "\n"))
}
