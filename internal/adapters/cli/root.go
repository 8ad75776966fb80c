package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "spacetraders",
		Short: "SpaceTraders CLI - Drive your agent through the SpaceTraders API",
		Long: `SpaceTraders CLI talks directly to the SpaceTraders API.

Tokens are read from the configuration file, from ST_API_AGENT_TOKEN /
ST_API_ACCOUNT_TOKEN, or from AGENT_TOKEN / ACCOUNT_TOKEN.

Examples:
  spacetraders register BADGER --faction COSMIC
  spacetraders agent
  spacetraders contracts list
  spacetraders contracts accept cmb9ysth4mqyfuo6x6jh4jk9w
  spacetraders waypoints list X1-MH3 --type PLANET
  spacetraders waypoints market X1-MH3-A2
  spacetraders ship dock SNAKE-1
  spacetraders ship navigate SNAKE-1 X1-MH3-B7 --mode DRIFT`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "",
		"Override the API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "",
		"Override the agent token")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Log every API request")

	// Add command groups
	rootCmd.AddCommand(newRegisterCommand(opts))
	rootCmd.AddCommand(newAgentCommand(opts))
	rootCmd.AddCommand(newContractsCommand(opts))
	rootCmd.AddCommand(newSystemsCommand(opts))
	rootCmd.AddCommand(newWaypointsCommand(opts))
	rootCmd.AddCommand(newShipCommand(opts))

	withTeardown(rootCmd, opts)

	return rootCmd
}

// withTeardown wraps every RunE so teardown also runs when the command fails;
// cobra skips post-run hooks after an error.
func withTeardown(cmd *cobra.Command, opts *rootOptions) {
	for _, child := range cmd.Commands() {
		withTeardown(child, opts)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runErr := run(cmd, args)
		if err := opts.teardown(); err != nil && runErr == nil {
			return err
		}
		return runErr
	}
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
