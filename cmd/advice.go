package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/garden"
	"github.com/leafwise/gardenlog/internal/kb"
	"github.com/leafwise/gardenlog/internal/llm"
)

var (
	adviceLight    string
	adviceWatering string
	adviceIssues   string
	adviceRefine   bool
	adviceLog      bool
)

var adviceCmd = &cobra.Command{
	Use:   "advice <plant>",
	Short: "Generate a plant care plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdvice,
}

func init() {
	adviceCmd.Flags().StringVar(&adviceLight, "light", "bright indirect light", "Available light conditions")
	adviceCmd.Flags().StringVar(&adviceWatering, "watering", "when the top inch of soil is dry", "Current watering habit")
	adviceCmd.Flags().StringVar(&adviceIssues, "issues", "", "Visible issues, if any")
	adviceCmd.Flags().BoolVar(&adviceRefine, "refine", false, "Rewrite the plan with the LLM")
	adviceCmd.Flags().BoolVar(&adviceLog, "log", false, "Record a 'care review' entry for this plant")
}

func runAdvice(cmd *cobra.Command, args []string) error {
	log, cfg := openLog()
	plant := args[0]

	plan := kb.CarePlan(kb.PlanInput{
		PlantName:     plant,
		Light:         adviceLight,
		WateringHabit: adviceWatering,
		Issues:        adviceIssues,
	})

	if adviceRefine {
		plan = refine(cmd, cfg, llm.CarePlanPrompt(plan), plan)
	}

	fmt.Println(plan)

	if adviceLog {
		_, err := log.Append(garden.EntryInput{
			PlantName: plant,
			Action:    "care review",
			Notes:     fmt.Sprintf("Conditions: light=%s, watering=%s", adviceLight, adviceWatering),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeFor(err))
		}
		fmt.Println("\nLogged care review.")
	}
	return nil
}
