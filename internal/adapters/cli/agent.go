package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
)

// newAgentCommand creates the agent command
func newAgentCommand(opts *rootOptions) *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Show the agent",
		Long: `Show the agent behind the agent token.

With --watch the agent is refreshed on every interval until interrupted.

Examples:
  spacetraders agent
  spacetraders agent --watch 30s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			agent, err := spacetraders.FetchAgent(ctx, client)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printAgent(out, agent.Data())
			fmt.Fprintf(out, "Contracts:    %d\n", len(agent.ListContracts()))

			if watch <= 0 {
				return nil
			}

			ticker := time.NewTicker(watch)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := agent.Refresh(ctx); err != nil {
						opts.logger.Printf("refresh failed: %v", err)
						continue
					}
					data := agent.Data()
					fmt.Fprintf(out, "%s  %s credits=%d\n", time.Now().Format(timeLayout), data.Symbol, data.Credits)
				}
			}
		},
	}

	cmd.Flags().DurationVar(&watch, "watch", 0, "Refresh interval (0 disables watching)")

	return cmd
}
