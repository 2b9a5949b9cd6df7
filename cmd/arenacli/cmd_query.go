package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/spf13/cobra"
)

func cmdQuery() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the application state.",
		Long: `Query the application state.

Choices and positions are settled to the cycle of the block their state was
read at before they are printed, so the shares include the accrual that is
not yet written to the chain.`,
	}
	cmd.AddCommand(
		cmdQueryTopic(),
		cmdQueryChoice(),
		cmdQueryPositions(),
		cmdQueryAllowances(),
		cmdQueryNonce(),
	)
	return cmd
}

func cmdQueryTopic() *cobra.Command {
	return &cobra.Command{
		Use:   "topic TOPIC_ID",
		Short: "Print a topic.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topicID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := nodeClient(cmd.Flags())
			if err != nil {
				return err
			}
			topic, err := fetchTopic(client, topicID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), topic)
		},
	}
}

func cmdQueryChoice() *cobra.Command {
	return &cobra.Command{
		Use:   "choice TOPIC_ID CHOICE_ID",
		Short: "Print a choice with its totals settled at the latest block.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			topicID, err := parseID(args[0])
			if err != nil {
				return err
			}
			choiceID, err := parseID(args[1])
			if err != nil {
				return err
			}
			client, err := nodeClient(cmd.Flags())
			if err != nil {
				return err
			}
			models, height, err := client.Query("/choices", arena.ChoiceKey(topicID, choiceID))
			if err != nil {
				return err
			}
			if len(models) == 0 {
				return errors.Wrapf(errors.ErrNotFound, "topic %d choice %d", topicID, choiceID)
			}
			var choice arena.Choice
			if err := choice.Unmarshal(models[0].Value); err != nil {
				return errors.Wrap(err, "cannot unmarshal choice")
			}
			topic, err := fetchTopic(client, topicID)
			if err != nil {
				return err
			}
			arena.SettleChoice(&choice, topic.AccrualRate, topic.CurrentCycle(height))
			return printJSON(cmd.OutOrStdout(), &choice)
		},
	}
}

func cmdQueryPositions() *cobra.Command {
	return &cobra.Command{
		Use:   "positions OWNER",
		Short: "Print all positions of an account, settled at the latest block.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := weave.ParseAddress(args[0])
			if err != nil {
				return err
			}
			client, err := nodeClient(cmd.Flags())
			if err != nil {
				return err
			}
			models, height, err := client.Query("/positions/owner", owner)
			if err != nil {
				return err
			}
			topics := make(map[uint64]*arena.Topic)
			positions := make([]*arena.Position, 0, len(models))
			for _, m := range models {
				var p arena.Position
				if err := p.Unmarshal(m.Value); err != nil {
					return errors.Wrap(err, "cannot unmarshal position")
				}
				if p.Tombstoned() {
					continue
				}
				topic, ok := topics[p.TopicID]
				if !ok {
					if topic, err = fetchTopic(client, p.TopicID); err != nil {
						return err
					}
					topics[p.TopicID] = topic
				}
				arena.SettlePosition(&p, topic.AccrualRate, topic.CurrentCycle(height))
				positions = append(positions, &p)
			}
			return printJSON(cmd.OutOrStdout(), positions)
		},
	}
}

func cmdQueryAllowances() *cobra.Command {
	return &cobra.Command{
		Use:   "allowances OWNER",
		Short: "Print all allowances granted by an account.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := weave.ParseAddress(args[0])
			if err != nil {
				return err
			}
			client, err := nodeClient(cmd.Flags())
			if err != nil {
				return err
			}
			models, _, err := client.Query("/allowances/owner", owner)
			if err != nil {
				return err
			}
			res := make([]*allowance.Allowance, 0, len(models))
			for _, m := range models {
				var a allowance.Allowance
				if err := a.Unmarshal(m.Value); err != nil {
					return errors.Wrap(err, "cannot unmarshal allowance")
				}
				res = append(res, &a)
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func cmdQueryNonce() *cobra.Command {
	return &cobra.Command{
		Use:   "nonce ADDRESS",
		Short: "Print the sequence number that the next transaction signed by an account must use.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := weave.ParseAddress(args[0])
			if err != nil {
				return err
			}
			client, err := nodeClient(cmd.Flags())
			if err != nil {
				return err
			}
			seq, err := nextSequence(client, addr)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seq)
			return err
		},
	}
}

func fetchTopic(client abciClient, topicID uint64) (*arena.Topic, error) {
	models, _, err := client.Query("/topics", arena.TopicKey(topicID))
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "topic %d", topicID)
	}
	var topic arena.Topic
	if err := topic.Unmarshal(models[0].Value); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal topic")
	}
	return &topic, nil
}

func parseID(raw string) (uint64, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "invalid ID %q", raw)
	}
	return n, nil
}

func printJSON(w io.Writer, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrap(err, "cannot JSON serialize")
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
