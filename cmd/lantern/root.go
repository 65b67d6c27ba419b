package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/spf13/cobra"

	"github.com/lanternml/lantern/provider/openairesponses"
)

var (
	// Global flags
	modelID string
	baseURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lantern",
	Short: "Lantern - OpenAI Responses API client",
	Long: `Lantern talks to the OpenAI Responses API: one-shot completions,
token streaming, the model catalog, and background response polling.

The API key is read from the OPENAI_API_KEY environment variable.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelID, "model", "m", "gpt-4o-mini", "model id")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newProvider builds a provider from the environment and global flags.
func newProvider() (*openairesponses.Provider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return openairesponses.New(client, openairesponses.WithLogger(logger))
}
