// Package diagnose maps symptom descriptions to likely causes and
// treatments using a small keyword rule table.
package diagnose

import "strings"

// Finding is one matched cause with its suggested treatment.
type Finding struct {
	Cause     string
	Treatment string
}

// Result is the outcome of a diagnosis: a one-line summary of possible
// causes and a combined advice text.
type Result struct {
	Summary  string
	Advice   string
	Findings []Finding
}

type rule struct {
	match     func(text string) bool
	cause     string
	treatment string
}

func allOf(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if !strings.Contains(text, k) {
				return false
			}
		}
		return true
	}
}

func anyOf(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

func and(a, b func(string) bool) func(string) bool {
	return func(text string) bool { return a(text) && b(text) }
}

var rules = []rule{
	{
		match:     allOf("yellow", "leaf"),
		cause:     "Nutrient deficiency or overwatering",
		treatment: "Check drainage, avoid waterlogging, and consider a balanced fertilizer. Ensure pot has drainage holes.",
	},
	{
		match:     allOf("brown", "tip"),
		cause:     "Low humidity or underwatering",
		treatment: "Increase humidity (tray of water, humidifier) and check that you are watering evenly.",
	},
	{
		match:     and(allOf("spots"), anyOf("black", "brown")),
		cause:     "Fungal or bacterial leaf spot",
		treatment: "Remove heavily affected leaves, improve air circulation, avoid overhead watering. Consider a fungicide if severe.",
	},
	{
		match:     and(allOf("white"), anyOf("powder", "powdery")),
		cause:     "Powdery mildew",
		treatment: "Remove affected leaves, increase airflow, avoid wetting foliage. Use a safe fungicidal spray if needed.",
	},
	{
		match:     anyOf("soft", "mushy", "rot"),
		cause:     "Root or stem rot (usually overwatering)",
		treatment: "Reduce watering, improve drainage, trim rotten roots/stems if possible, and repot into fresh dry soil.",
	},
	{
		match:     anyOf("bugs", "insect", "aphid", "mealy", "mites", "scale"),
		cause:     "Pest infestation",
		treatment: "Isolate the plant, wash leaves with water, and treat with insecticidal soap or neem oil. Repeat weekly until resolved.",
	},
}

const (
	noMatchSummary = "No clear match from the symptom rules."
	noMatchAdvice  = "Check for pests under leaves, inspect roots for rot, and review watering and light conditions. " +
		"If possible, compare visuals to trusted plant diagnosis resources or consult a local gardening expert."
)

// Diagnose runs the rule table over a symptom description. Matching is
// case-insensitive; when no rule matches the result carries generic
// troubleshooting advice.
func Diagnose(symptoms string) Result {
	text := strings.ToLower(symptoms)

	var findings []Finding
	for _, r := range rules {
		if r.match(text) {
			findings = append(findings, Finding{Cause: r.cause, Treatment: r.treatment})
		}
	}

	if len(findings) == 0 {
		return Result{Summary: noMatchSummary, Advice: noMatchAdvice}
	}

	causes := make([]string, len(findings))
	advice := make([]string, len(findings))
	for i, f := range findings {
		causes[i] = f.Cause
		advice[i] = "- " + f.Cause + ": " + f.Treatment
	}
	return Result{
		Summary:  strings.Join(causes, "; "),
		Advice:   strings.Join(advice, "\n\n"),
		Findings: findings,
	}
}
