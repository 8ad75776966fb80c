package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
)

// newWaypointsCommand creates the waypoints command with subcommands
func newWaypointsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waypoints",
		Short: "Browse waypoints, markets and shipyards",
		Long: `Browse the waypoints of a system and the markets and shipyards on them.

Examples:
  spacetraders waypoints list X1-MH3 --type PLANET
  spacetraders waypoints list X1-MH3 --trait SHIPYARD
  spacetraders waypoints market X1-MH3-A2
  spacetraders waypoints shipyard X1-MH3-A2`,
	}

	cmd.AddCommand(newWaypointsListCommand(opts))
	cmd.AddCommand(newWaypointsMarketCommand(opts))
	cmd.AddCommand(newWaypointsShipyardCommand(opts))

	return cmd
}

func newWaypointsListCommand(opts *rootOptions) *cobra.Command {
	var typeFlag, traitFlag string

	cmd := &cobra.Command{
		Use:   "list <system>",
		Short: "List the waypoints of a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var waypointType *model.WaypointType
			if typeFlag != "" {
				parsed, err := model.ParseWaypointType(typeFlag)
				if err != nil {
					return err
				}
				waypointType = &parsed
			}

			var trait *model.WaypointTraitSymbol
			if traitFlag != "" {
				parsed, err := model.ParseWaypointTrait(traitFlag)
				if err != nil {
					return err
				}
				trait = &parsed
			}

			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			waypoints, err := spacetraders.NewSystem(client, args[0]).ListWaypoints(cmd.Context(), waypointType, trait)
			if err != nil {
				return err
			}

			if len(waypoints) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No waypoints found")
				return nil
			}

			w := newTable(cmd.OutOrStdout(), "WAYPOINT", "TYPE", "X", "Y", "TRAITS")
			for _, wp := range waypoints {
				data := wp.Data()
				traits := make([]string, 0, len(data.Traits))
				for _, t := range data.Traits {
					traits = append(traits, string(t.Symbol))
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", data.Symbol, data.Type, data.X, data.Y, strings.Join(traits, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Only waypoints of this type (e.g. PLANET)")
	cmd.Flags().StringVar(&traitFlag, "trait", "", "Only waypoints with this trait (e.g. MARKETPLACE)")

	return cmd
}

// waypointRef builds a Waypoint handle from its symbol without fetching it
func waypointRef(opts *rootOptions, symbol string) (*spacetraders.Waypoint, error) {
	systemSymbol, err := systemOf(symbol)
	if err != nil {
		return nil, err
	}

	client, err := opts.agentClient()
	if err != nil {
		return nil, err
	}

	return spacetraders.NewWaypoint(client, model.WaypointData{Symbol: symbol, SystemSymbol: systemSymbol}), nil
}

func newWaypointsMarketCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "market <waypoint>",
		Short: "Show the market at a waypoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			waypoint, err := waypointRef(opts, args[0])
			if err != nil {
				return err
			}

			market, err := waypoint.GetMarket(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n=== Market Data for %s ===\n", market.Symbol)
			fmt.Fprintf(out, "Exports:  %s\n", joinGoods(market.Exports))
			fmt.Fprintf(out, "Imports:  %s\n", joinGoods(market.Imports))
			fmt.Fprintf(out, "Exchange: %s\n\n", joinGoods(market.Exchange))

			if len(market.TradeGoods) == 0 {
				fmt.Fprintln(out, "Prices are visible only with a ship present")
				return nil
			}

			w := newTable(out, "SYMBOL", "TYPE", "SUPPLY", "ACTIVITY", "BUY PRICE", "SELL PRICE", "VOLUME")
			for _, good := range market.TradeGoods {
				activity := "N/A"
				if good.Activity != nil {
					activity = string(*good.Activity)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
					good.Symbol, good.Type, good.Supply, activity, good.PurchasePrice, good.SellPrice, good.TradeVolume)
			}
			return w.Flush()
		},
	}
}

func newWaypointsShipyardCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shipyard <waypoint>",
		Short: "Show the shipyard at a waypoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			waypoint, err := waypointRef(opts, args[0])
			if err != nil {
				return err
			}

			shipyard, err := waypoint.GetShipyard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n=== Shipyard at %s ===\n", shipyard.Symbol)
			fmt.Fprintf(out, "Modifications fee: %d\n\n", shipyard.ModificationsFee)

			if len(shipyard.Ships) == 0 {
				types := make([]string, 0, len(shipyard.ShipTypes))
				for _, t := range shipyard.ShipTypes {
					types = append(types, string(t.Type))
				}
				fmt.Fprintf(out, "Ship types: %s\n", strings.Join(types, ", "))
				return nil
			}

			w := newTable(out, "TYPE", "NAME", "SUPPLY", "PRICE")
			for _, ship := range shipyard.Ships {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", ship.Type, ship.Name, ship.Supply, ship.PurchasePrice)
			}
			return w.Flush()
		},
	}
}

func joinGoods(goods []model.TradeGood) string {
	if len(goods) == 0 {
		return "-"
	}
	symbols := make([]string, 0, len(goods))
	for _, g := range goods {
		symbols = append(symbols, string(g.Symbol))
	}
	return strings.Join(symbols, ", ")
}
