package main

import (
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go/v3/responses"
	"github.com/spf13/cobra"

	"github.com/lanternml/lantern/provider/openairesponses"
)

var pollFlags struct {
	interval time.Duration
	timeout  time.Duration
	cancel   bool
}

var pollCmd = &cobra.Command{
	Use:   "poll [response-id]",
	Short: "Poll a background response until it finishes",
	Long: `Poll a background response until it reaches a terminal status and
print the result. With --cancel the response is cancelled instead.

Examples:
  lantern poll resp_abc123
  lantern poll --interval 5s --timeout 10m resp_abc123
  lantern poll --cancel resp_abc123`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		responseID := args[0]

		if pollFlags.cancel {
			resp, err := p.Cancel(cmd.Context(), responseID)
			if err != nil {
				return err
			}
			fmt.Printf("response %s is now %s\n", resp.ID, resp.Status)
			return nil
		}

		msg, err := p.Poll(cmd.Context(), responseID, openairesponses.PollOptions{
			Interval: pollFlags.interval,
			Timeout:  pollFlags.timeout,
			Observer: func(resp *responses.Response) {
				if verbose {
					fmt.Fprintf(os.Stderr, "status: %s\n", resp.Status)
				}
			},
		})
		if err != nil {
			return err
		}
		fmt.Println(msg.Text())
		return nil
	},
}

func init() {
	pollCmd.Flags().DurationVar(&pollFlags.interval, "interval", 2*time.Second, "time between polls")
	pollCmd.Flags().DurationVar(&pollFlags.timeout, "timeout", 10*time.Minute, "give up after this long")
	pollCmd.Flags().BoolVar(&pollFlags.cancel, "cancel", false, "cancel the response instead of polling")
	rootCmd.AddCommand(pollCmd)
}
