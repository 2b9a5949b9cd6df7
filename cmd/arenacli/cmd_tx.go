package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/spf13/cobra"
)

func cmdWithFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "with-fee",
		Short: "Set a fee for the transaction read from the input.",
		Args:  cobra.NoArgs,
	}
	var (
		payerFl  = flAddress(cmd.Flags(), "payer", "Optional address of the fee payer. If not provided the main signer pays.")
		amountFl = flCoin(cmd.Flags(), "amount", "", "Fee value.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if coin.IsEmpty(amountFl) || !amountFl.IsPositive() {
			return errors.Wrap(errors.ErrAmount, "fee value must be greater than zero")
		}
		if len(*payerFl) != 0 {
			if err := payerFl.Validate(); err != nil {
				return errors.Wrap(err, "payer")
			}
		}
		tx, _, err := readTx(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "cannot read transaction")
		}
		fee := *amountFl
		tx.Fees = &cash.FeeInfo{
			Payer: *payerFl,
			Fees:  &fee,
		}
		_, err = writeTx(cmd.OutOrStdout(), tx)
		return err
	}
	return cmd
}

func cmdSign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign the transaction read from the input.",
		Long: `Sign the transaction read from the input.

The chain ID and the sequence number of the signer are fetched from the node.
The signed transaction is written to the output.`,
		Args: cobra.NoArgs,
	}
	keyPathFl := keyPathFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		key, err := decodePrivateKey(*keyPathFl)
		if err != nil {
			return err
		}
		tx, _, err := readTx(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "cannot read transaction")
		}
		client, err := nodeClient(cmd.Flags())
		if err != nil {
			return err
		}
		chainID, err := client.ChainID()
		if err != nil {
			return err
		}
		seq, err := nextSequence(client, key.PublicKey().Address())
		if err != nil {
			return err
		}
		sig, err := sigs.SignTx(key, tx, chainID, seq)
		if err != nil {
			return errors.Wrap(err, "cannot sign transaction")
		}
		tx.Signatures = append(tx.Signatures, sig)
		_, err = writeTx(cmd.OutOrStdout(), tx)
		return err
	}
	return cmd
}

// nextSequence returns the sequence number that the next transaction signed
// by given account must use.
func nextSequence(client abciClient, addr weave.Address) (int64, error) {
	models, _, err := client.Query("/auth", addr)
	if err != nil {
		return 0, errors.Wrap(err, "query sequence")
	}
	if len(models) == 0 {
		return 0, nil
	}
	var user sigs.UserData
	if err := user.Unmarshal(models[0].Value); err != nil {
		return 0, errors.Wrap(err, "cannot unmarshal user data")
	}
	return user.Sequence, nil
}

func cmdSubmit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the transaction read from the input and wait until it is included in a block.",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		tx, _, err := readTx(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "cannot read transaction")
		}
		msg, err := tx.GetMsg()
		if err != nil {
			return errors.Wrap(err, "cannot extract message")
		}
		raw, err := tx.Marshal()
		if err != nil {
			return errors.Wrap(err, "cannot serialize transaction")
		}
		client, err := nodeClient(cmd.Flags())
		if err != nil {
			return err
		}
		data, err := client.Broadcast(raw)
		if err != nil {
			return err
		}
		return formatDeliverData(cmd.OutOrStdout(), msg, data)
	}
	return cmd
}

// formatDeliverData prints the result of a delivered message in a human
// readable form.
func formatDeliverData(w io.Writer, msg weave.Msg, data []byte) error {
	var err error
	switch msg.(type) {
	case *arena.CreateTopicMsg:
		if len(data) != 8 {
			return errors.Wrapf(errors.ErrInput, "unexpected topic key %x", data)
		}
		_, err = fmt.Fprintf(w, "topic %d\n", sequenceID(data))
	case *arena.CreateChoiceMsg:
		if len(data) != 16 {
			return errors.Wrapf(errors.ErrInput, "unexpected choice key %x", data)
		}
		_, err = fmt.Fprintf(w, "topic %d choice %d\n", sequenceID(data[:8]), sequenceID(data[8:]))
	case *arena.ContributeMsg:
		topicID, choiceID, owner, index, perr := arena.ParsePositionKey(data)
		if perr != nil {
			return perr
		}
		_, err = fmt.Fprintf(w, "topic %d choice %d owner %s position %d\n", topicID, choiceID, owner, index)
	default:
		if len(data) != 0 {
			_, err = fmt.Fprintf(w, "%x\n", data)
		}
	}
	return err
}

func cmdView() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the transaction read from the input in a human readable format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, _, err := readTx(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "cannot read transaction")
			}
			raw, err := json.MarshalIndent(tx, "", "\t")
			if err != nil {
				return errors.Wrap(err, "cannot JSON serialize")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		},
	}
}
