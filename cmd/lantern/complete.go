package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanternml/lantern/model"
	"github.com/lanternml/lantern/provider/openairesponses"
)

var completeFlags struct {
	system      string
	temperature float64
	background  bool
	showUsage   bool
}

var completeCmd = &cobra.Command{
	Use:   "complete [prompt]",
	Short: "Run a one-shot completion",
	Long: `Run a single non-streaming completion and print the reply.

Examples:
  lantern complete --model gpt-4o "What is the capital of France?"
  lantern complete --system "Answer in French." "What is the capital of France?"
  lantern complete --background "Summarize War and Peace."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}

		var messages []model.Message
		if completeFlags.system != "" {
			messages = append(messages, model.NewSystemMessage(completeFlags.system))
		}
		messages = append(messages, model.NewUserMessage(strings.Join(args, " ")))

		req := &openairesponses.Request{
			Model:       modelID,
			Messages:    messages,
			Background:  completeFlags.background,
			Temperature: openairesponses.NormalizeTemperature(&completeFlags.temperature, modelID),
		}
		msg, err := p.Complete(cmd.Context(), req)
		if err != nil {
			return err
		}
		if completeFlags.background {
			fmt.Printf("background response started: %s\n", msg.ResponseID)
			fmt.Printf("poll it with: lantern poll %s\n", msg.ResponseID)
			return nil
		}
		fmt.Println(msg.Text())
		if completeFlags.showUsage {
			printUsage(msg)
		}
		return nil
	},
}

func printUsage(msg *model.Message) {
	cost := openairesponses.Cost(msg.ModelID, msg.InputTokens, msg.OutputTokens, msg.CachedTokens)
	fmt.Fprintf(os.Stderr, "tokens: %d in (%d cached), %d out; est. cost $%.6f\n",
		msg.InputTokens, msg.CachedTokens, msg.OutputTokens, cost)
}

func init() {
	completeCmd.Flags().StringVar(&completeFlags.system, "system", "", "system instructions")
	completeCmd.Flags().Float64VarP(&completeFlags.temperature, "temperature", "t", 1.0, "sampling temperature")
	completeCmd.Flags().BoolVar(&completeFlags.background, "background", false, "run server-side and return immediately")
	completeCmd.Flags().BoolVar(&completeFlags.showUsage, "usage", false, "print token usage and estimated cost")
	rootCmd.AddCommand(completeCmd)
}
