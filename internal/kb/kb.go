// Package kb holds the built-in plant knowledge base and renders care
// plans from it.
package kb

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leafwise/gardenlog/internal/diagnose"
)

//go:embed plants.yaml
var plantsYAML []byte

// CareInfo is the care profile for one plant.
type CareInfo struct {
	Watering   string `yaml:"watering"`
	Light      string `yaml:"light"`
	Soil       string `yaml:"soil"`
	Fertilizer string `yaml:"fertilizer"`
}

type database struct {
	Plants map[string]CareInfo `yaml:"plants"`
}

var plants map[string]CareInfo

func init() {
	var db database
	if err := yaml.Unmarshal(plantsYAML, &db); err != nil {
		panic(fmt.Sprintf("kb: embedded plants.yaml is invalid: %v", err))
	}
	plants = db.Plants
}

// Normalize canonicalizes a plant name for knowledge-base lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the care profile for a plant, matching by normalized name.
func Lookup(name string) (CareInfo, bool) {
	info, ok := plants[Normalize(name)]
	return info, ok
}

// Known returns the normalized names of all plants in the knowledge base.
func Known() []string {
	names := make([]string, 0, len(plants))
	for name := range plants {
		names = append(names, name)
	}
	return names
}

// PlanInput describes the conditions for a care plan.
type PlanInput struct {
	PlantName     string
	Light         string
	WateringHabit string
	Issues        string
}

// CarePlan renders a care plan from the built-in profile (or general
// guidelines for unknown plants), the described conditions, and an inline
// diagnosis when issues are reported.
func CarePlan(in PlanInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plant care plan for **%s**\n", in.PlantName)

	if info, ok := Lookup(in.PlantName); ok {
		b.WriteString("\nBasic profile (from built-in database):\n")
		fmt.Fprintf(&b, "- Watering: %s\n", info.Watering)
		fmt.Fprintf(&b, "- Light: %s\n", info.Light)
		fmt.Fprintf(&b, "- Soil: %s\n", info.Soil)
		fmt.Fprintf(&b, "- Fertilizer: %s\n", info.Fertilizer)
	} else {
		b.WriteString("\nThis plant is not in the built-in database, so here are general indoor plant guidelines:\n")
		b.WriteString("- Water when the top 2-3 cm (1 inch) of soil feels dry, unless it is a cactus/succulent.\n")
		b.WriteString("- Provide bright, indirect light if possible.\n")
		b.WriteString("- Use well-draining potting mix and ensure the pot has drainage holes.\n")
		b.WriteString("- Fertilize lightly during the active growing season (spring/summer).\n")
	}

	b.WriteString("\nYour described conditions:\n")
	fmt.Fprintf(&b, "- Light: %s\n", in.Light)
	fmt.Fprintf(&b, "- Watering habit: %s\n", in.WateringHabit)

	if in.Issues != "" {
		fmt.Fprintf(&b, "- Reported issues: %s\n", in.Issues)
		diag := diagnose.Diagnose(in.Issues)
		b.WriteString("\nPreliminary issue diagnosis:\n")
		fmt.Fprintf(&b, "Possible causes: %s\n", diag.Summary)
		b.WriteString("Suggested actions:\n")
		b.WriteString(diag.Advice)
		b.WriteString("\n")
	}

	b.WriteString("\nGeneral best practices:\n")
	b.WriteString("- Check soil moisture with your finger before watering.\n")
	b.WriteString("- Rotate the plant every 1-2 weeks for even growth.\n")
	b.WriteString("- Remove dead or yellowing leaves to reduce stress and disease risk.")

	return b.String()
}
