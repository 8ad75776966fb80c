package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
)

// newContractsCommand creates the contracts command with subcommands
func newContractsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "List, accept and fulfill contracts",
		Long: `List, accept and fulfill the agent's contracts.

Examples:
  spacetraders contracts list
  spacetraders contracts accept cmb9ysth4mqyfuo6x6jh4jk9w
  spacetraders contracts fulfill cmb9ysth4mqyfuo6x6jh4jk9w`,
	}

	cmd.AddCommand(newContractsListCommand(opts))
	cmd.AddCommand(newContractsAcceptCommand(opts))
	cmd.AddCommand(newContractsFulfillCommand(opts))

	return cmd
}

func newContractsListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the agent's contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			agent, err := spacetraders.FetchAgent(cmd.Context(), client)
			if err != nil {
				return err
			}

			ids := agent.ListContracts()
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No contracts")
				return nil
			}

			w := newTable(cmd.OutOrStdout(), "ID", "TYPE", "FACTION", "ACCEPTED", "FULFILLED", "DEADLINE")
			for _, id := range ids {
				contract, _ := agent.Contract(id)
				data := contract.Data()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					data.ID, data.Type, data.Faction, yesNo(data.Accepted), yesNo(data.Fulfilled), formatTime(data.Terms.Deadline))
			}
			return w.Flush()
		},
	}
}

func newContractsAcceptCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <contract-id>",
		Short: "Accept a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			agent, err := spacetraders.FetchAgent(cmd.Context(), client)
			if err != nil {
				return err
			}

			contract, err := agent.AcceptContract(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Contract accepted")
			printContract(out, contract.Data())
			fmt.Fprintf(out, "Credits:    %d\n", agent.Data().Credits)
			return nil
		},
	}
}

func newContractsFulfillCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fulfill <contract-id>",
		Short: "Fulfill a contract whose deliveries are complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.agentClient()
			if err != nil {
				return err
			}

			agent, err := spacetraders.FetchAgent(cmd.Context(), client)
			if err != nil {
				return err
			}

			contract, ok := agent.Contract(args[0])
			if !ok {
				return fmt.Errorf("unknown contract %q", args[0])
			}

			fulfilled, err := contract.Fulfill(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Contract fulfilled")
			printContract(out, fulfilled.Data())
			return nil
		},
	}
}
