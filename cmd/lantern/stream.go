package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanternml/lantern/model"
	"github.com/lanternml/lantern/provider/openairesponses"
)

var streamFlags struct {
	system    string
	showUsage bool
}

var streamCmd = &cobra.Command{
	Use:   "stream [prompt]",
	Short: "Stream a completion token by token",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}

		var messages []model.Message
		if streamFlags.system != "" {
			messages = append(messages, model.NewSystemMessage(streamFlags.system))
		}
		messages = append(messages, model.NewUserMessage(strings.Join(args, " ")))

		acc := model.NewChunkAccumulator()
		for chunk, err := range p.Stream(cmd.Context(), &openairesponses.Request{
			Model:    modelID,
			Messages: messages,
			Stream:   true,
		}) {
			if err != nil {
				return err
			}
			fmt.Print(chunk.Content)
			acc.Add(chunk)
		}
		fmt.Println()

		msg := acc.Message()
		for _, call := range msg.ToolCalls {
			fmt.Printf("tool call requested: %s(%v)\n", call.Name, call.Arguments)
		}
		if streamFlags.showUsage {
			printUsage(msg)
		}
		return nil
	},
}

func init() {
	streamCmd.Flags().StringVar(&streamFlags.system, "system", "", "system instructions")
	streamCmd.Flags().BoolVar(&streamFlags.showUsage, "usage", false, "print token usage and estimated cost")
	rootCmd.AddCommand(streamCmd)
}
