package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/config"
	"github.com/leafwise/gardenlog/internal/garden"
	"github.com/leafwise/gardenlog/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "gardenlog",
	Short: "gardenlog – plant care advisor and gardening log",
	Long: `gardenlog is a single-binary, file-based plant-care assistant.
It offers care advice, diagnoses plant symptoms, and keeps an append-only
care log with next-due reminders, stored as human-readable JSON in
~/.gardenlog/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(adviceCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(uiCmd)
}

// openLog loads the config and opens the care log, exiting on unreadable
// or corrupt storage.
func openLog() (*garden.Log, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	path := cfg.Log.Path
	if path == "" {
		path, err = storage.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	log, err := garden.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return log, cfg
}

// exitCodeFor distinguishes rejected input from storage failures.
func exitCodeFor(err error) int {
	var verr *garden.ValidationError
	if errors.As(err, &verr) {
		return 1
	}
	return 2
}
