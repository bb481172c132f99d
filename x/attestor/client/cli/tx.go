package cli

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/geodenet/geodenet/x/attestor/types"
)

// GetTxCmd returns the transaction commands for the attestor module
func GetTxCmd() *cobra.Command {
	attestorTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Attestor transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	attestorTxCmd.AddCommand(
		CmdRegisterAttestor(),
		CmdUpdateAttestor(),
		CmdRemoveAttestor(),
		CmdHeartbeat(),
		CmdAttestGeode(),
		CmdReportGeode(),
	)

	return attestorTxCmd
}

// GetQueryCmd returns the cli query commands for the attestor module.
// Queries go through the external RPC layer; there is no module-level query
// client.
func GetQueryCmd() *cobra.Command {
	return nil
}

// CmdRegisterAttestor returns a CLI command handler for registering an attestor
func CmdRegisterAttestor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [url] [pubkey-base64]",
		Short: "Register as a verifier",
		Long: `Register the sending account as an attestor. The account must hold
at least the minimum attestor stake.

Example:
  $ geodenetd tx attestor register https://attestor.example.org <pubkey> --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pubkey, err := base64.StdEncoding.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("invalid pubkey encoding: %w", err)
			}

			msg := &types.MsgRegisterAttestor{
				Attestor: clientCtx.GetFromAddress().String(),
				Url:      args[0],
				Pubkey:   pubkey,
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

// CmdUpdateAttestor returns a CLI command handler for updating the endpoint
func CmdUpdateAttestor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [url]",
		Short: "Change your attestor endpoint url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateAttestor{
				Attestor: clientCtx.GetFromAddress().String(),
				Url:      args[0],
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

// CmdRemoveAttestor returns a CLI command handler for deregistering
func CmdRemoveAttestor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Deregister as a verifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveAttestor{
				Attestor: clientCtx.GetFromAddress().String(),
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

// CmdHeartbeat returns a CLI command handler for heartbeats
func CmdHeartbeat() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Prove your attestor is alive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAttestorHeartbeat{
				Attestor: clientCtx.GetFromAddress().String(),
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

// CmdAttestGeode returns a CLI command handler for attesting a geode
func CmdAttestGeode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attest [geode-address]",
		Short: "Vouch for a geode's health",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAttestGeode{
				Attestor: clientCtx.GetFromAddress().String(),
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

// CmdReportGeode returns a CLI command handler for reporting a geode
func CmdReportGeode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [geode-address]",
		Short: "Report a geode you attest as misbehaving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgReportGeode{
				Attestor: clientCtx.GetFromAddress().String(),
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
