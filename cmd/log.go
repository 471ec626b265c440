package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/garden"
	"github.com/leafwise/gardenlog/internal/schedule"
)

var (
	logNotes string
	logAt    string
)

var logCmd = &cobra.Command{
	Use:   "log <plant> <action>",
	Short: "Record a care action (watered, fertilized, pruned, repotted, ...)",
	Args:  cobra.ExactArgs(2),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Optional notes")
	logCmd.Flags().StringVar(&logAt, "at", "", "Timestamp (RFC 3339), defaults to now")
}

func runLog(cmd *cobra.Command, args []string) error {
	log, _ := openLog()

	in := garden.EntryInput{
		PlantName: args[0],
		Action:    args[1],
		Notes:     logNotes,
	}
	if logAt != "" {
		ts, err := time.Parse(time.RFC3339, logAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --at value %q: expected RFC 3339, e.g. 2026-08-29T09:00:00Z\n", logAt)
			os.Exit(1)
		}
		in.Timestamp = ts
	}

	entry, err := log.Append(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	fmt.Printf("Logged %q for %s at %s.\n",
		entry.Action, entry.PlantName, entry.Timestamp.Format("2006-01-02 15:04"))
	if due, ok := schedule.NextDue(entry.Timestamp, entry.Action); ok {
		fmt.Printf("Suggested next reminder: %s\n", due.Format("2006-01-02 15:04"))
	}
	return nil
}
