package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd returns the arenacli command tree.
//
// Every command is an independent runnable that reads only from the command
// input and writes only to the command output. Transaction builders write a
// binary, length prefixed transaction that the following commands consume.
// A unix pipe is used to construct a pipeline:
//
//	$ arenacli contribute --contributor $ADDR --topic 1 --choice 0 --amount "5 IOV" \
//		| arenacli with-fee --amount "0.01 IOV" \
//		| arenacli sign \
//		| arenacli submit
//
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arenacli",
		Short:         "arenacli is a command line client for the arena application.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("tm", env("ARENACLI_TM_ADDR", "http://localhost:26657"),
		"Tendermint node address. You can use ARENACLI_TM_ADDR environment variable to set it.")

	root.AddCommand(
		cmdKeygen(),
		cmdKeyaddr(),
		cmdSendTokens(),
		cmdApprove(),
		cmdCreateTopic(),
		cmdCreateChoice(),
		cmdContribute(),
		cmdWithdraw(),
		cmdWithdrawAll(),
		cmdTransferPositions(),
		cmdTransferAllPositions(),
		cmdRemoveTopic(),
		cmdRemoveChoice(),
		cmdWithFee(),
		cmdSign(),
		cmdSubmit(),
		cmdView(),
		cmdQuery(),
		cmdVersion(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), gitHash)
			return err
		},
	}
}

// gitHash is set during the compilation time.
var gitHash = "dev"
