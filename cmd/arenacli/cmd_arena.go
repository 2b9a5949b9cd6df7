package main

import (
	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/x/cash"
	"github.com/spf13/cobra"
)

func cmdSendTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-tokens",
		Short: "Create a transaction for transferring funds between two accounts.",
		Args:  cobra.NoArgs,
	}
	var (
		srcFl    = flAddress(cmd.Flags(), "src", "Account that the funds are sent from.")
		dstFl    = flAddress(cmd.Flags(), "dst", "Account that the funds are sent to.")
		amountFl = flCoin(cmd.Flags(), "amount", "1 IOV", "Amount to transfer.")
		memoFl   = cmd.Flags().String("memo", "", "A short message attached to the transfer.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		amount := *amountFl
		return writeMsg(cmd.OutOrStdout(), &cash.SendMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Source:      *srcFl,
			Destination: *dstFl,
			Amount:      &amount,
			Memo:        *memoFl,
		})
	}
	return cmd
}

func cmdApprove() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Create a transaction that allows the arena to move the owner funds.",
		Long: `Create a transaction that allows the arena to move the owner funds.

Contributions and creation fees are pulled from the owner account. The arena
can move at most the approved amount. Approving zero revokes the allowance.`,
		Args: cobra.NoArgs,
	}
	var (
		ownerFl   = flAddress(cmd.Flags(), "owner", "Account that grants the allowance.")
		spenderFl = flAddress(cmd.Flags(), "spender", "Account that is allowed to move the funds. The arena spender is used if not provided.")
		amountFl  = flCoin(cmd.Flags(), "amount", "1 IOV", "Amount that can be moved.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		spender := *spenderFl
		if len(spender) == 0 {
			spender = arena.SpenderAddress()
		}
		return writeMsg(cmd.OutOrStdout(), &allowance.ApproveMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    *ownerFl,
			Spender:  spender,
			Amount:   *amountFl,
		})
	}
	return cmd
}

func cmdCreateTopic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-topic",
		Short: "Create a transaction for creating a new topic.",
		Long: `Create a transaction for creating a new topic.

All fees are expressed in basis points, 10000 being 100%. The topic creation
fee configured for the arena is pulled from the creator account.`,
		Args: cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		creatorFl        = flAddress(fl, "creator", "Account that creates the topic and pays the creation fee.")
		fundsFl          = flAddress(fl, "funds", "Account that receives the topic fee.")
		cycleFl          = fl.Int64("cycle", 0, "Number of blocks in a single accrual cycle.")
		accrualFl        = fl.Uint32("accrual-rate", arena.MaxRate, "Part of the position tokens added to its shares every cycle.")
		topicFeeFl       = fl.Uint32("topic-fee", 0, "Cut of every contribution that goes to the topic funds.")
		maxChoiceFeeFl   = fl.Uint32("max-choice-fee", 0, "Highest fee that a choice of this topic can take.")
		contributorFeeFl = fl.Uint32("contributor-fee", 0, "Cut of every contribution that goes to the existing contributors.")
		thresholdFl      = fl.Uint32("support-threshold", 0, "Relative support threshold.")
		periodFl         = fl.Int64("funding-period", 0, "Funding period in blocks.")
		percentageFl     = fl.Uint32("funding-percentage", 0, "Funding percentage.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.CreateTopicMsg{
			Metadata:                 &weave.Metadata{Schema: 1},
			Creator:                  *creatorFl,
			Funds:                    *fundsFl,
			CycleLength:              *cycleFl,
			AccrualRate:              *accrualFl,
			TopicFee:                 *topicFeeFl,
			MaxChoiceFee:             *maxChoiceFeeFl,
			ContributorFee:           *contributorFeeFl,
			RelativeSupportThreshold: *thresholdFl,
			FundingPeriod:            *periodFl,
			FundingPercentage:        *percentageFl,
		})
	}
	return cmd
}

func cmdCreateChoice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-choice",
		Short: "Create a transaction for creating a new choice within a topic.",
		Args:  cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		creatorFl     = flAddress(fl, "creator", "Account that creates the choice and pays the creation fee.")
		fundsFl       = flAddress(fl, "funds", "Account that receives the choice fee.")
		topicFl       = fl.Uint64("topic", 0, "Topic ID.")
		descriptionFl = fl.String("description", "", "Choice description.")
		feeFl         = fl.Uint32("fee", 0, "Cut of every contribution that goes to the choice funds, in basis points.")
		targetFl      = flCoin(fl, "target", "", "Optional funding target.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.CreateChoiceMsg{
			Metadata:      &weave.Metadata{Schema: 1},
			Creator:       *creatorFl,
			TopicID:       *topicFl,
			Description:   *descriptionFl,
			Funds:         *fundsFl,
			Fee:           *feeFl,
			FundingTarget: *targetFl,
		})
	}
	return cmd
}

func cmdContribute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contribute",
		Short: "Create a transaction for locking funds behind a choice.",
		Args:  cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		contributorFl = flAddress(fl, "contributor", "Account that contributes.")
		topicFl       = fl.Uint64("topic", 0, "Topic ID.")
		choiceFl      = fl.Uint64("choice", 0, "Choice ID.")
		amountFl      = flCoin(fl, "amount", "1 IOV", "Contributed amount, before the fees are taken.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.ContributeMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Contributor: *contributorFl,
			TopicID:     *topicFl,
			ChoiceID:    *choiceFl,
			Amount:      *amountFl,
		})
	}
	return cmd
}

func cmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Create a transaction for withdrawing the tokens of a single position.",
		Args:  cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		ownerFl  = flAddress(fl, "owner", "Position owner.")
		topicFl  = fl.Uint64("topic", 0, "Topic ID.")
		choiceFl = fl.Uint64("choice", 0, "Choice ID.")
		indexFl  = fl.Uint64("index", 0, "Position index.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    *ownerFl,
			TopicID:  *topicFl,
			ChoiceID: *choiceFl,
			Index:    *indexFl,
		})
	}
	return cmd
}

func cmdWithdrawAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-all",
		Short: "Create a transaction for withdrawing the tokens of all positions on a choice.",
		Args:  cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		ownerFl  = flAddress(fl, "owner", "Positions owner.")
		topicFl  = fl.Uint64("topic", 0, "Topic ID.")
		choiceFl = fl.Uint64("choice", 0, "Choice ID.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.WithdrawAllMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    *ownerFl,
			TopicID:  *topicFl,
			ChoiceID: *choiceFl,
		})
	}
	return cmd
}

func cmdTransferPositions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-positions",
		Short: "Create a transaction for moving positions to another account.",
		Long: `Create a transaction for moving positions to another account.

A single index creates a single position transfer. Several indexes are moved
together: either all of them or none.`,
		Args: cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		ownerFl     = flAddress(fl, "owner", "Positions owner.")
		recipientFl = flAddress(fl, "recipient", "Account that receives the positions.")
		topicFl     = fl.Uint64("topic", 0, "Topic ID.")
		choiceFl    = fl.Uint64("choice", 0, "Choice ID.")
		indexesFl   = fl.UintSlice("index", nil, "Position index. Can be repeated or comma separated.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(*indexesFl) == 1 {
			return writeMsg(cmd.OutOrStdout(), &arena.TransferPositionMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     *ownerFl,
				Recipient: *recipientFl,
				TopicID:   *topicFl,
				ChoiceID:  *choiceFl,
				Index:     uint64((*indexesFl)[0]),
			})
		}
		indexes := make([]uint64, len(*indexesFl))
		for i, n := range *indexesFl {
			indexes[i] = uint64(n)
		}
		return writeMsg(cmd.OutOrStdout(), &arena.TransferPositionsMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Owner:     *ownerFl,
			Recipient: *recipientFl,
			TopicID:   *topicFl,
			ChoiceID:  *choiceFl,
			Indexes:   indexes,
		})
	}
	return cmd
}

func cmdTransferAllPositions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-all-positions",
		Short: "Create a transaction for moving all positions on a choice to another account.",
		Args:  cobra.NoArgs,
	}
	fl := cmd.Flags()
	var (
		ownerFl     = flAddress(fl, "owner", "Positions owner.")
		recipientFl = flAddress(fl, "recipient", "Account that receives the positions.")
		topicFl     = fl.Uint64("topic", 0, "Topic ID.")
		choiceFl    = fl.Uint64("choice", 0, "Choice ID.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.TransferAllPositionsMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Owner:     *ownerFl,
			Recipient: *recipientFl,
			TopicID:   *topicFl,
			ChoiceID:  *choiceFl,
		})
	}
	return cmd
}

func cmdRemoveTopic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-topic",
		Short: "Create a transaction for removing a topic. Must be signed by the arena admin.",
		Args:  cobra.NoArgs,
	}
	topicFl := cmd.Flags().Uint64("topic", 0, "Topic ID.")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.RemoveTopicMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TopicID:  *topicFl,
		})
	}
	return cmd
}

func cmdRemoveChoice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-choice",
		Short: "Create a transaction for removing a choice. Must be signed by the arena admin.",
		Args:  cobra.NoArgs,
	}
	var (
		topicFl  = cmd.Flags().Uint64("topic", 0, "Topic ID.")
		choiceFl = cmd.Flags().Uint64("choice", 0, "Choice ID.")
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeMsg(cmd.OutOrStdout(), &arena.RemoveChoiceMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TopicID:  *topicFl,
			ChoiceID: *choiceFl,
		})
	}
	return cmd
}
