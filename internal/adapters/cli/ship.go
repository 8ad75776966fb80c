package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
)

// newShipCommand creates the ship command with subcommands
func newShipCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Inspect and command ships",
		Long: `Inspect and command the agent's ships.

Examples:
  spacetraders ship list
  spacetraders ship get SNAKE-1
  spacetraders ship orbit SNAKE-1
  spacetraders ship navigate SNAKE-1 X1-MH3-B7 --mode CRUISE
  spacetraders ship dock SNAKE-1
  spacetraders ship refuel SNAKE-1 --units 100`,
	}

	cmd.AddCommand(newShipListCommand(opts))
	cmd.AddCommand(newShipGetCommand(opts))
	cmd.AddCommand(newShipOrbitCommand(opts))
	cmd.AddCommand(newShipDockCommand(opts))
	cmd.AddCommand(newShipNavigateCommand(opts))
	cmd.AddCommand(newShipRefuelCommand(opts))

	return cmd
}

// shipRef builds a Ship handle without fetching it
func shipRef(opts *rootOptions, symbol string) (*spacetraders.Ship, error) {
	client, err := opts.agentClient()
	if err != nil {
		return nil, err
	}
	return spacetraders.NewShip(client, symbol), nil
}

func newShipListCommand(opts *rootOptions) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the agent's ships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			ships, _, err := spacetraders.ListShips(cmd.Context(), client, optionalInt(cmd, "page", page), optionalInt(cmd, "limit", limit))
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout(), "SHIP", "ROLE", "STATUS", "LOCATION", "FUEL", "CARGO")
			for _, ship := range ships {
				data, err := ship.Data(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%d/%d\n",
					data.Symbol, data.Registration.Role, data.Nav.Status, data.Nav.WaypointSymbol,
					data.Fuel.Current, data.Fuel.Capacity, data.Cargo.Units, data.Cargo.Capacity)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size (1-20)")

	return cmd
}

func newShipGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <ship>",
		Short: "Show a ship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ship, err := shipRef(opts, args[0])
			if err != nil {
				return err
			}

			data, err := ship.Data(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ship %s (%s, %s)\n", data.Symbol, data.Registration.Role, data.Frame.Name)
			printNav(out, data.Nav)
			fmt.Fprintf(out, "  Fuel:        %d/%d\n", data.Fuel.Current, data.Fuel.Capacity)
			fmt.Fprintf(out, "  Cargo:       %d/%d\n", data.Cargo.Units, data.Cargo.Capacity)
			for _, item := range data.Cargo.Inventory {
				fmt.Fprintf(out, "    %-24s %d\n", item.Symbol, item.Units)
			}
			return nil
		},
	}
}

func newShipOrbitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orbit <ship>",
		Short: "Move a docked ship into orbit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ship, err := shipRef(opts, args[0])
			if err != nil {
				return err
			}
			if err := ship.Orbit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is in orbit\n", ship.Symbol())
			return nil
		},
	}
}

func newShipDockCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dock <ship>",
		Short: "Dock a ship at its current location",
		Long: `Dock a ship at its current location.
Ship must be in orbit to dock.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ship, err := shipRef(opts, args[0])
			if err != nil {
				return err
			}
			if err := ship.Dock(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is docked\n", ship.Symbol())
			return nil
		},
	}
}

func newShipNavigateCommand(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "navigate <ship> <waypoint>",
		Short: "Navigate a ship to a waypoint in its system",
		Long: `Navigate a ship to a waypoint in its current system.
Ship must be in orbit. --mode changes the flight mode first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ship, err := shipRef(opts, args[0])
			if err != nil {
				return err
			}

			if mode != "" {
				flightMode, err := model.ParseFlightMode(mode)
				if err != nil {
					return err
				}
				if _, err := ship.SetFlightMode(cmd.Context(), flightMode); err != nil {
					return err
				}
			}

			result, err := ship.Navigate(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s departed for %s\n", ship.Symbol(), result.Nav.Route.Destination.Symbol)
			printNav(out, result.Nav)
			fmt.Fprintf(out, "  Fuel:        %d/%d\n", result.Fuel.Current, result.Fuel.Capacity)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Flight mode: DRIFT, STEALTH, CRUISE or BURN")

	return cmd
}

func newShipRefuelCommand(opts *rootOptions) *cobra.Command {
	var units int

	cmd := &cobra.Command{
		Use:   "refuel <ship>",
		Short: "Refuel a docked ship",
		Long: `Refuel a docked ship at a marketplace that trades fuel.
Without --units the tank is filled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ship, err := shipRef(opts, args[0])
			if err != nil {
				return err
			}

			transaction, err := ship.Refuel(cmd.Context(), optionalInt(cmd, "units", units))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Bought %d units of fuel for %d credits at %s\n",
				transaction.Units, transaction.TotalPrice, transaction.WaypointSymbol)
			return nil
		},
	}

	cmd.Flags().IntVar(&units, "units", 0, "Units of fuel to buy")

	return cmd
}
