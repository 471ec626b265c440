package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leafwise/gardenlog/internal/config"
	"github.com/leafwise/gardenlog/internal/llm"
)

// refineTimeout bounds a single refinement call.
const refineTimeout = 60 * time.Second

// refine rewrites text through the LLM, falling back to the rule-based
// text with a warning when the call fails. A missing API key is fatal:
// the user explicitly asked for refinement.
func refine(cmd *cobra.Command, cfg config.Config, prompt, fallback string) string {
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

	ctx, cancel := context.WithTimeout(ctx, refineTimeout)
	defer cancel()

	out, err := client.Refine(ctx, prompt, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM refinement failed, using rule-based text: %v\n", err)
	}
	return out
}
