package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/llm"
)

var (
	upcomingDays    int
	upcomingSuggest bool
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show care tasks due within the horizon",
	Args:  cobra.NoArgs,
	RunE:  runUpcoming,
}

func init() {
	upcomingCmd.Flags().IntVar(&upcomingDays, "days", 14, "Horizon in days")
	upcomingCmd.Flags().BoolVar(&upcomingSuggest, "suggest", false, "Also ask the LLM for one task suggestion based on recent entries")
}

func runUpcoming(cmd *cobra.Command, args []string) error {
	log, cfg := openLog()

	tasks := log.Upcoming(time.Now(), upcomingDays)
	if len(tasks) == 0 {
		fmt.Println("No upcoming tasks scheduled.")
	} else {
		fmt.Printf("Upcoming tasks (next %d days):\n", upcomingDays)
		for _, task := range tasks {
			fmt.Printf("- %s | %s | %s\n", task.DueAt.Format("2006-01-02"), task.PlantName, task.Action)
		}
	}

	if !upcomingSuggest {
		return nil
	}

	recent := log.Recent(10)
	if len(recent) == 0 {
		return nil
	}

	key, err := llm.APIKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := cmd.Context()
	client := llm.NewClient(ctx, key, llm.Options{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	suggestion, err := client.Chat(ctx, llm.SuggestTaskPrompt(recent))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: task suggestion failed: %v\n", err)
		return nil
	}
	fmt.Printf("\nSuggested upcoming task:\n%s\n", suggestion)
	return nil
}
