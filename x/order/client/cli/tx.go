package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/geodenet/geodenet/x/order/types"
)

const (
	FlagBinary   = "binary"
	FlagDomain   = "domain"
	FlagName     = "name"
	FlagPrice    = "price"
	FlagNum      = "num"
	FlagDuration = "duration"
)

// GetTxCmd returns the transaction commands for the order module
func GetTxCmd() *cobra.Command {
	orderTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Order transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	orderTxCmd.AddCommand(
		CmdCreateOrder(),
		CmdCancelOrder(),
	)

	return orderTxCmd
}

// GetQueryCmd returns the cli query commands for the order module. Queries
// go through the external RPC layer; there is no module-level query client.
func GetQueryCmd() *cobra.Command {
	return nil
}

// CmdCreateOrder returns a CLI command handler for submitting an order
func CmdCreateOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-order",
		Short: "Submit a new compute order",
		Long: `Submit a new compute order to be dispatched to healthy geodes.

Example:
  $ geodenetd tx order create-order \
    --binary "ipfs://QmExample" \
    --domain "compute.example.org" \
    --name "training-run" \
    --price 1000000 \
    --num 3 \
    --duration 10 \
    --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			binary, err := cmd.Flags().GetString(FlagBinary)
			if err != nil {
				return err
			}
			if binary == "" {
				return fmt.Errorf("binary cannot be empty")
			}

			domain, err := cmd.Flags().GetString(FlagDomain)
			if err != nil {
				return err
			}

			name, err := cmd.Flags().GetString(FlagName)
			if err != nil {
				return err
			}

			priceStr, err := cmd.Flags().GetString(FlagPrice)
			if err != nil {
				return err
			}
			price, ok := math.NewIntFromString(priceStr)
			if !ok {
				return fmt.Errorf("invalid price: %s", priceStr)
			}

			num, err := cmd.Flags().GetUint32(FlagNum)
			if err != nil {
				return err
			}

			duration, err := cmd.Flags().GetUint32(FlagDuration)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateOrder{
				Requester: clientCtx.GetFromAddress().String(),
				Binary:    binary,
				Domain:    domain,
				Name:      name,
				Price:     price,
				Num:       num,
				Duration:  duration,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagBinary, "", "Reference to the order binary payload")
	cmd.Flags().String(FlagDomain, "", "Domain the serving geodes must match")
	cmd.Flags().String(FlagName, "", "Human-readable order name")
	cmd.Flags().String(FlagPrice, "", "Order price, escrowed on submission")
	cmd.Flags().Uint32(FlagNum, 1, "Number of geodes to dispatch")
	cmd.Flags().Uint32(FlagDuration, 1, "Order duration in sessions")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdCancelOrder returns a CLI command handler for canceling an order
func CmdCancelOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order [order-id]",
		Short: "Cancel an order you own",
		Long: `Mark an order for termination at the next session boundary.
The escrowed price is refunded when the cancellation lands.

Example:
  $ geodenetd tx order cancel-order 3f2a... --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCancelOrder{
				Requester: clientCtx.GetFromAddress().String(),
				OrderId:   args[0],
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
