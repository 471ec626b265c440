package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/model"
	"github.com/leafwise/gardenlog/internal/schedule"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent log entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVar(&recentLimit, "limit", 10, "Maximum number of entries")
}

func runRecent(cmd *cobra.Command, args []string) error {
	log, _ := openLog()

	entries := log.Recent(recentLimit)
	if len(entries) == 0 {
		fmt.Println("No log entries yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Println(formatEntry(e))
	}
	return nil
}

// formatEntry renders one log entry as a single list line.
func formatEntry(e model.Entry) string {
	notes := e.Notes
	if notes == "" {
		notes = "no notes"
	}
	line := fmt.Sprintf("- [%s] %s | %s | %s",
		e.Timestamp.Format("2006-01-02 15:04"), e.PlantName, e.Action, notes)
	if due, ok := schedule.NextDue(e.Timestamp, e.Action); ok {
		line += " | next due: " + due.Format("2006-01-02")
	}
	return line
}
