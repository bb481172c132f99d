package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/geodenet/geodenet/x/session/types"
)

// GetTxCmd returns the transaction commands for the session module
func GetTxCmd() *cobra.Command {
	sessionTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Session transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	sessionTxCmd.AddCommand(
		CmdUpdatePhaseBlocks(),
	)

	return sessionTxCmd
}

// GetQueryCmd returns the cli query commands for the session module. Queries
// go through the external RPC layer; there is no module-level query client.
func GetQueryCmd() *cobra.Command {
	return nil
}

// CmdUpdatePhaseBlocks returns a CLI command handler for resizing the
// session cycle's phase windows, normally wrapped in a gov proposal
func CmdUpdatePhaseBlocks() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-phase-blocks [initialize] [offline] [dispatch] [expired]",
		Short: "Resize the session cycle's phase windows (authority only)",
		Long: `Resize the per-phase block counts of the session cycle.

Example:
  $ geodenetd tx session update-phase-blocks 1 2 2 1 --from authority`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			spans := make([]int64, 4)
			for i, arg := range args {
				spans[i], err = strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return err
				}
			}

			msg := &types.MsgUpdatePhaseBlocks{
				Authority: clientCtx.GetFromAddress().String(),
				PhaseBlocks: types.PhaseBlocks{
					SessionInitialize: spans[0],
					GeodeOffline:      spans[1],
					OrderDispatch:     spans[2],
					ExpiredCheck:      spans[3],
				},
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
