package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable(out io.Writer, headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(dashes, "\t"))
	return w
}

// systemOf derives the system symbol from a waypoint symbol:
// X1-MH3-A2 belongs to X1-MH3
func systemOf(waypointSymbol string) (string, error) {
	parts := strings.Split(waypointSymbol, "-")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid waypoint symbol %q", waypointSymbol)
	}
	return parts[0] + "-" + parts[1], nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printAgent(out io.Writer, data model.AgentData) {
	fmt.Fprintf(out, "Agent:        %s\n", data.Symbol)
	fmt.Fprintf(out, "Headquarters: %s\n", data.Headquarters)
	fmt.Fprintf(out, "Credits:      %d\n", data.Credits)
	fmt.Fprintf(out, "Faction:      %s\n", data.StartingFaction)
	if data.ShipCount != nil {
		fmt.Fprintf(out, "Ships:        %d\n", *data.ShipCount)
	}
}

func printContract(out io.Writer, data model.ContractData) {
	fmt.Fprintf(out, "Contract:   %s (%s, %s)\n", data.ID, data.Type, data.Faction)
	fmt.Fprintf(out, "Accepted:   %s\n", yesNo(data.Accepted))
	fmt.Fprintf(out, "Fulfilled:  %s\n", yesNo(data.Fulfilled))
	fmt.Fprintf(out, "Deadline:   %s\n", formatTime(data.Terms.Deadline))
	fmt.Fprintf(out, "Payment:    %d on accept, %d on fulfill\n", data.Terms.Payment.OnAccepted, data.Terms.Payment.OnFulfilled)
	for _, d := range data.Terms.Deliver {
		fmt.Fprintf(out, "  deliver %d/%d %s to %s\n", d.UnitsFulfilled, d.UnitsRequired, d.TradeSymbol, d.DestinationSymbol)
	}
}

func printNav(out io.Writer, nav model.NavData) {
	fmt.Fprintf(out, "  Status:      %s\n", nav.Status)
	fmt.Fprintf(out, "  Location:    %s\n", nav.WaypointSymbol)
	fmt.Fprintf(out, "  Flight mode: %s\n", nav.FlightMode)
	if nav.Status == model.ShipStatusInTransit {
		fmt.Fprintf(out, "  Arrival:     %s\n", formatTime(nav.Route.Arrival))
	}
}
