package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/diagnose"
	"github.com/leafwise/gardenlog/internal/garden"
	"github.com/leafwise/gardenlog/internal/llm"
)

var (
	diagnosePlant  string
	diagnoseRefine bool
	diagnoseLog    bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <symptoms...>",
	Short: "Diagnose plant symptoms from a description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVar(&diagnosePlant, "plant", "", "Plant name (optional)")
	diagnoseCmd.Flags().BoolVar(&diagnoseRefine, "refine", false, "Rewrite the diagnosis with the LLM")
	diagnoseCmd.Flags().BoolVar(&diagnoseLog, "log", false, "Record this diagnosis in the care log")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	log, cfg := openLog()
	symptoms := strings.Join(args, " ")

	result := diagnose.Diagnose(symptoms)
	summary := result.Summary
	advice := result.Advice

	if diagnoseRefine {
		summary = refine(cmd, cfg, llm.DiagnosisSummaryPrompt(symptoms, summary), summary)
		advice = refine(cmd, cfg, llm.DiagnosisAdvicePrompt(symptoms, advice), advice)
	}

	fmt.Println("Diagnosis Summary:")
	fmt.Println(summary)
	fmt.Println("\nAdvice:")
	fmt.Println(advice)

	if diagnoseLog {
		plant := diagnosePlant
		if plant == "" {
			plant = "Unknown plant"
		}
		_, err := log.Append(garden.EntryInput{
			PlantName: plant,
			Action:    "diagnosis",
			Notes:     symptoms,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeFor(err))
		}
		fmt.Println("\nDiagnosis logged.")
	}
	return nil
}
