package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
)

// newRegisterCommand creates the register command
func newRegisterCommand(opts *rootOptions) *cobra.Command {
	var faction string

	cmd := &cobra.Command{
		Use:   "register <callsign>",
		Short: "Register a new agent",
		Long: `Register a new agent with the account token and print its agent token.

Example:
  spacetraders register BADGER --faction COSMIC`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factionSymbol, err := model.ParseFactionSymbol(faction)
			if err != nil {
				return err
			}

			client, err := opts.accountClient()
			if err != nil {
				return err
			}

			agent, err := spacetraders.NewAccount(client).RegisterAgent(cmd.Context(), model.RegistrationRequest{
				Callsign: args[0],
				Faction:  factionSymbol,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Agent registered")
			printAgent(out, agent.Data())
			fmt.Fprintf(out, "Contracts:    %d\n", len(agent.ListContracts()))
			fmt.Fprintf(out, "Token:        %s\n", agent.Client().Token())
			fmt.Fprintln(out, "\nStore the token as AGENT_TOKEN to use it with the other commands.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&faction, "faction", "f", string(model.FactionCosmic), "Starting faction")

	return cmd
}
