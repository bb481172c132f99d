package cli

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/geodenet/geodenet/x/geode/types"
)

const (
	FlagIp     = "ip"
	FlagDomain = "domain"
	FlagProps  = "props"
)

// GetTxCmd returns the transaction commands for the geode module
func GetTxCmd() *cobra.Command {
	geodeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Geode transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	geodeTxCmd.AddCommand(
		CmdRegisterGeode(),
		CmdRemoveGeode(),
		CmdUpdateGeodeProps(),
		CmdUpdateGeodeDomain(),
		CmdGeodeReady(),
		CmdGeodeFinalizing(),
		CmdGeodeFinalized(),
		CmdSubmitGeodeReport(),
	)

	return geodeTxCmd
}

// GetQueryCmd returns the cli query commands for the geode module. Queries
// go through the external RPC layer; there is no module-level query client.
func GetQueryCmd() *cobra.Command {
	return nil
}

// CmdRegisterGeode returns a CLI command handler for registering a geode
func CmdRegisterGeode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [geode-address]",
		Short: "Register a compute node you operate",
		Long: `Register a compute node under your provider account.

Example:
  $ geodenetd tx geode register geo1abc... \
    --ip "203.0.113.7" \
    --domain "compute.example.org" \
    --props "gpu=h100,region=eu" \
    --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			ip, err := cmd.Flags().GetString(FlagIp)
			if err != nil {
				return err
			}
			domain, err := cmd.Flags().GetString(FlagDomain)
			if err != nil {
				return err
			}
			propsStr, err := cmd.Flags().GetString(FlagProps)
			if err != nil {
				return err
			}
			props, err := parseProps(propsStr)
			if err != nil {
				return err
			}

			msg := &types.MsgRegisterGeode{
				Provider: clientCtx.GetFromAddress().String(),
				GeodeId:  args[0],
				Ip:       ip,
				Domain:   domain,
				Props:    props,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagIp, "", "Public IP of the node")
	cmd.Flags().String(FlagDomain, "", "Domain the node serves")
	cmd.Flags().String(FlagProps, "", "Comma-separated key=value node properties")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func parseProps(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}
	props := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("invalid property %q, expected key=value", pair)
		}
		props[kv[0]] = kv[1]
	}
	return props, nil
}

// CmdRemoveGeode returns a CLI command handler for removing a geode
func CmdRemoveGeode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [geode-address]",
		Short: "Request removal of a node you operate",
		Long: `Request removal of a node. An idle node exits at the next session
boundary; a busy one keeps serving its current order first.

Example:
  $ geodenetd tx geode remove geo1abc... --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveGeode{
				Provider: clientCtx.GetFromAddress().String(),
				GeodeId:  args[0],
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

// CmdUpdateGeodeProps returns a CLI command handler for updating a property
func CmdUpdateGeodeProps() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-props [geode-address] [key] [value]",
		Short: "Set one property of a node you operate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateGeodeProps{
				Provider: clientCtx.GetFromAddress().String(),
				GeodeId:  args[0],
				Key:      args[1],
				Value:    args[2],
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

// CmdUpdateGeodeDomain returns a CLI command handler for updating the domain
func CmdUpdateGeodeDomain() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-domain [geode-address] [domain]",
		Short: "Change the domain a node you operate serves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateGeodeDomain{
				Provider: clientCtx.GetFromAddress().String(),
				GeodeId:  args[0],
				Domain:   args[1],
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

// CmdGeodeReady returns a CLI command handler for the ready report
func CmdGeodeReady() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ready [order-id]",
		Short: "Report that your node started serving its assigned order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgGeodeReady{
				GeodeId: clientCtx.GetFromAddress().String(),
				OrderId: args[0],
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

// CmdGeodeFinalizing returns a CLI command handler for the finalizing report
func CmdGeodeFinalizing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalizing [order-id]",
		Short: "Report that your node started tearing down its order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgGeodeFinalizing{
				GeodeId: clientCtx.GetFromAddress().String(),
				OrderId: args[0],
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

// CmdGeodeFinalized returns a CLI command handler for the finalized report
func CmdGeodeFinalized() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalized [order-id]",
		Short: "Report that your node finished its order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgGeodeFinalized{
				GeodeId: clientCtx.GetFromAddress().String(),
				OrderId: args[0],
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

// CmdSubmitGeodeReport returns a CLI command handler for relaying a
// node-signed report from any funded account
func CmdSubmitGeodeReport() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-report [report-type] [message-base64] [signature-base64]",
		Short: "Relay a report signed by a node's own key",
		Long: `Relay a lifecycle report on behalf of a node. The message is the
node's ed25519 public key followed by the raw order id, signed by the node
key; the relaying account only pays fees.

Example:
  $ geodenetd tx geode submit-report ready <message> <signature> --from relay`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			message, err := base64.StdEncoding.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("invalid message encoding: %w", err)
			}
			signature, err := base64.StdEncoding.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("invalid signature encoding: %w", err)
			}

			msg := &types.MsgSubmitGeodeReport{
				Submitter:  clientCtx.GetFromAddress().String(),
				ReportType: args[0],
				Message:    message,
				Signature:  signature,
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
