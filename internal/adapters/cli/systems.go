package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
)

// newSystemsCommand creates the systems command with subcommands
func newSystemsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "Browse star systems",
		Long: `Browse the systems of the universe.

Examples:
  spacetraders systems list --page 2 --limit 20
  spacetraders systems get X1-MH3`,
	}

	cmd.AddCommand(newSystemsListCommand(opts))
	cmd.AddCommand(newSystemsGetCommand(opts))

	return cmd
}

func newSystemsListCommand(opts *rootOptions) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			systems, meta, err := spacetraders.ListSystems(cmd.Context(), client, optionalInt(cmd, "page", page), optionalInt(cmd, "limit", limit))
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout(), "SYMBOL", "TYPE", "X", "Y", "WAYPOINTS")
			for _, system := range systems {
				data, err := system.Data(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", data.Symbol, data.Type, data.X, data.Y, len(data.Waypoints))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d (limit %d) of %d systems\n", meta.Page, meta.Limit, meta.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size (1-20)")

	return cmd
}

func newSystemsGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <system>",
		Short: "Show a system and its waypoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			system, err := spacetraders.FetchSystem(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			data, err := system.Data(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n=== System %s ===\n", data.Symbol)
			fmt.Fprintf(out, "Sector:   %s\n", data.SectorSymbol)
			fmt.Fprintf(out, "Type:     %s\n", data.Type)
			fmt.Fprintf(out, "Position: (%d, %d)\n\n", data.X, data.Y)

			w := newTable(out, "WAYPOINT", "TYPE", "X", "Y")
			for _, wp := range data.Waypoints {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", wp.Symbol, wp.Type, wp.X, wp.Y)
			}
			return w.Flush()
		},
	}
}

// optionalInt returns nil unless the flag was set, so the server default applies
func optionalInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
