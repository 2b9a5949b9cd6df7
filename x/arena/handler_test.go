package arena

import (
	"context"
	"testing"

	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		BlockHeight int64
		Conditions  []weave.Condition
		Tx          weave.Tx
		WantErr     *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		adminCond = weavetest.NewCondition()
		aliceCond = weavetest.NewCondition()
		bobCond   = weavetest.NewCondition()
		carolCond = weavetest.NewCondition()

		alice = aliceCond.Address()
		bob   = bobCond.Address()
		carol = carolCond.Address()

		arenaFunds  = weavetest.NewCondition().Address()
		topicFunds  = weavetest.NewCondition().Address()
		choiceFunds = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Conf       func(*Configuration)
		Funds      []AccountBalance
		Allowances []AccountBalance
		Requests   []Request
		AfterTest  func(t *testing.T, db weave.KVStore)
	}{
		"tokens accrue shares once per elapsed cycle": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(11)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(20)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{bobCond},
					Tx:          contributeTx(bob, 0, 0, iov(10)),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPosition(t, db, alice, 0, 109, iov(11), iov(0))
				assertPosition(t, db, alice, 0, 110, iov(11), iov(11))
				assertPosition(t, db, alice, 1, 110, iov(20), iov(0))
				assertPosition(t, db, bob, 0, 110, iov(10), iov(0))

				positions, err := NewQuerier().Positions(db, alice, 110)
				if err != nil {
					t.Fatalf("positions: %s", err)
				}
				var total coin.Coin
				for _, p := range positions {
					total, _ = total.Add(p.Tokens)
				}
				if !total.Equals(iov(31)) {
					t.Fatalf("want 31 IOV in all alice positions, got %v", total)
				}

				assertTotals(t, db, 110, iov(41), iov(11))
				assertTotals(t, db, 210, iov(41), iov(52))
				assertLedger(t, db, 210, alice, bob)

				assertFunds(t, db, alice, iov(69))
				assertFunds(t, db, bob, iov(90))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(41))
			},
		},
		"deleted choice and topic do not accept contributions": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(5)),
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 7, iov(5)),
					WantErr:     errors.ErrNotFound,
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{bobCond},
					Tx:          removeChoiceTx(0, 1),
					WantErr:     errors.ErrUnauthorized,
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{adminCond},
					Tx:          removeChoiceTx(0, 1),
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{adminCond},
					Tx:          removeChoiceTx(0, 1),
					WantErr:     ErrDeletedChoice,
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 1, iov(5)),
					WantErr:     ErrDeletedChoice,
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(5)),
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          removeTopicTx(0),
					WantErr:     errors.ErrUnauthorized,
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{adminCond},
					Tx:          removeTopicTx(0),
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(5)),
					WantErr:     ErrDeletedTopic,
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 1, iov(5)),
					WantErr:     ErrDeletedTopic,
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
					WantErr:     ErrDeletedTopic,
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{adminCond},
					Tx:          removeTopicTx(0),
					WantErr:     ErrDeletedTopic,
				},
				{
					BlockHeight: 30,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 0),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				q := NewQuerier()
				if deleted, err := q.IsTopicDeleted(db, 0); err != nil || !deleted {
					t.Fatalf("want topic deleted, got %v, %v", deleted, err)
				}
				if deleted, err := q.IsChoiceDeleted(db, 0, 1); err != nil || !deleted {
					t.Fatalf("want choice deleted, got %v, %v", deleted, err)
				}
				if deleted, err := q.IsChoiceDeleted(db, 0, 0); err != nil || deleted {
					t.Fatalf("want choice not deleted, got %v, %v", deleted, err)
				}
				if n, err := q.PositionsLength(db, 0, 0, alice); err != nil || n != 2 {
					t.Fatalf("want 2 positions, got %d, %v", n, err)
				}
				// Withdrawn before accruing any shares.
				if _, err := q.PositionOf(db, 0, 0, alice, 0, 30); !ErrPositionNotFound.Is(err) {
					t.Fatalf("want withdrawn position to be gone, got %+v", err)
				}
				assertPosition(t, db, alice, 1, 30, iov(5), iov(0))
				assertLedger(t, db, 500, alice)
				assertFunds(t, db, alice, iov(95))
			},
		},
		"positions are moved whole to the recipient": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(30000)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(30000)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(10000)),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(20000)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          transferPositionsTx(alice, bob, 0, 0, 0),
					WantErr:     errors.ErrDuplicate,
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          transferPositionsTx(alice, bob, 0, 2),
					WantErr:     ErrPositionNotFound,
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{bobCond},
					Tx:          transferPositionsTx(alice, bob, 0, 1),
					WantErr:     errors.ErrUnauthorized,
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          transferPositionsTx(alice, alice, 0, 1),
					WantErr:     errors.ErrInput,
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          transferPositionsTx(alice, bob, 0, 1),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{Msg: &TransferPositionMsg{
						Metadata:  &weave.Metadata{Schema: 1},
						Owner:     alice,
						Recipient: bob,
						Index:     0,
					}},
					WantErr: ErrPositionNotFound,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				q := NewQuerier()
				for i := uint64(0); i < 2; i++ {
					if _, err := q.PositionOf(db, 0, 0, alice, i, 110); !ErrPositionNotFound.Is(err) {
						t.Fatalf("want alice position %d to be gone, got %+v", i, err)
					}
				}
				if n, err := q.PositionsLength(db, 0, 0, alice); err != nil || n != 2 {
					t.Fatalf("want 2 alice position slots, got %d, %v", n, err)
				}
				assertPosition(t, db, bob, 0, 110, iov(10000), iov(10000))
				assertPosition(t, db, bob, 1, 110, iov(20000), iov(20000))
				assertTotals(t, db, 110, iov(30000), iov(30000))
				assertLedger(t, db, 310, alice, bob)
				assertFunds(t, db, alice, iov(0))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(30000))
			},
		},
		"all positions are transferred and withdrawn": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(1)),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(2)),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(3)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 1),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 1),
					WantErr:     errors.ErrState,
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 3),
					WantErr:     ErrPositionNotFound,
				},
				{
					BlockHeight: 210,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          transferAllTx(alice, bob),
				},
				{
					BlockHeight: 210,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          transferAllTx(alice, bob),
					WantErr:     ErrPositionNotFound,
				},
				{
					BlockHeight: 210,
					Conditions:  []weave.Condition{bobCond},
					Tx:          withdrawAllTx(bob),
				},
				{
					BlockHeight: 210,
					Conditions:  []weave.Condition{bobCond},
					Tx:          withdrawAllTx(bob),
					WantErr:     ErrPositionNotFound,
				},
				{
					BlockHeight: 210,
					Conditions:  []weave.Condition{bobCond},
					Tx:          withdrawTx(bob, 0, 0, 1),
					WantErr:     errors.ErrState,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				// Shares are kept after the tokens are withdrawn.
				assertPosition(t, db, bob, 0, 210, iov(0), iov(2))
				assertPosition(t, db, bob, 1, 210, iov(0), iov(2))
				assertPosition(t, db, bob, 2, 210, iov(0), iov(6))
				assertTotals(t, db, 210, iov(0), iov(10))
				assertLedger(t, db, 410, alice, bob)
				assertFunds(t, db, alice, iov(96))
				assertFunds(t, db, bob, iov(4))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(0))
			},
		},
		"fees are distributed and prior contributors are paid from the pool": {
			Conf: func(c *Configuration) {
				c.ArenaFee = 1000
			},
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 500, 1200),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 1000),
				},
				{
					// Nobody to pay the contributor cut to.
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(100)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{bobCond},
					Tx:          contributeTx(bob, 0, 0, iov(100)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 0),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPosition(t, db, alice, 0, 110, iov(0), iov(75))
				assertPosition(t, db, bob, 0, 110, iov(63), iov(0))
				assertTotals(t, db, 110, iov(63), iov(75))
				assertLedger(t, db, 510, alice, bob)

				choice, err := NewQuerier().Choice(db, 0, 0, 110)
				if err != nil {
					t.Fatalf("choice: %s", err)
				}
				if !choice.ContributorPool.IsZero() {
					t.Fatalf("want contributor pool paid out, got %v", choice.ContributorPool)
				}

				assertFunds(t, db, arenaFunds, iov(20))
				assertFunds(t, db, topicFunds, iov(10))
				assertFunds(t, db, choiceFunds, iov(20))
				assertFunds(t, db, alice, iov(87))
				assertFunds(t, db, bob, iov(0))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(63))
			},
		},
		"contributor cut without earned shares stays with the contributor": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 1200),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(100)),
				},
				{
					// Alice has tokens but no shares yet.
					BlockHeight: 10,
					Conditions:  []weave.Condition{bobCond},
					Tx:          contributeTx(bob, 0, 0, iov(100)),
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 0),
				},
				{
					BlockHeight: 20,
					Conditions:  []weave.Condition{bobCond},
					Tx:          withdrawTx(bob, 0, 0, 0),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				choice, err := NewQuerier().Choice(db, 0, 0, 20)
				if err != nil {
					t.Fatalf("choice: %s", err)
				}
				if !choice.ContributorPool.IsZero() || !choice.TotalTokens.IsZero() {
					t.Fatalf("want empty choice, got %v tokens and %v in the pool", choice.TotalTokens, choice.ContributorPool)
				}
				assertFunds(t, db, alice, iov(100))
				assertFunds(t, db, bob, iov(100))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(0))
			},
		},
		"last withdrawal empties the contributor pool": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
				{Wallet: bob, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 1200),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(100)),
				},
				{
					BlockHeight: 110,
					Conditions:  []weave.Condition{bobCond},
					Tx:          contributeTx(bob, 0, 0, iov(100)),
				},
				{
					// 200 of 288 claimable shares.
					BlockHeight: 210,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 0),
				},
				{
					BlockHeight: 210,
					Conditions:  []weave.Condition{bobCond},
					Tx:          withdrawTx(bob, 0, 0, 0),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				choice, err := NewQuerier().Choice(db, 0, 0, 210)
				if err != nil {
					t.Fatalf("choice: %s", err)
				}
				if !choice.ContributorPool.IsZero() {
					t.Fatalf("want contributor pool paid out, got %v", choice.ContributorPool)
				}
				assertFunds(t, db, alice, coin.NewCoin(108, 333333333, "IOV"))
				assertFunds(t, db, bob, coin.NewCoin(91, 666666667, "IOV"))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(0))
			},
		},
		"tokens can be withdrawn after shares reach their limit": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100000000)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100000000)},
			},
			Requests: []Request{
				{
					BlockHeight: 1,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 1,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 1,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(100000000)),
				},
				{
					BlockHeight: 1000000001,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          withdrawTx(alice, 0, 0, 0),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				limit := coin.NewCoin(coin.MaxInt, coin.MaxFrac, "IOV")
				assertPosition(t, db, alice, 0, 1000000001, iov(0), limit)
				assertTotals(t, db, 1000000001, iov(0), limit)
				assertFunds(t, db, alice, iov(100000000))
				assertFunds(t, db, ChoiceAccount(0, 0), iov(0))
			},
		},
		"shares accrue with the topic accrual rate": {
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicWithRateTx(alice, topicFunds, 0, 0, 0),
					WantErr:     errors.ErrInput,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicWithRateTx(alice, topicFunds, 0, 0, MaxRate+1),
					WantErr:     ErrInvalidRate,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicWithRateTx(alice, topicFunds, 0, 0, 2500),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(10)),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPosition(t, db, alice, 0, 110, iov(10), coin.NewCoin(2, 500000000, "IOV"))
				assertPosition(t, db, alice, 0, 310, iov(10), coin.NewCoin(7, 500000000, "IOV"))
				assertTotals(t, db, 310, iov(10), coin.NewCoin(7, 500000000, "IOV"))
				assertLedger(t, db, 310, alice)

				// Rejected creations do not use up an ID.
				next, err := NewQuerier().NextTopicID(db)
				if err != nil {
					t.Fatalf("next topic ID: %s", err)
				}
				if next != 1 {
					t.Fatalf("want next topic ID 1, got %d", next)
				}
			},
		},
		"creation fees are pulled with an allowance": {
			Conf: func(c *Configuration) {
				c.TopicCreationFee = iov(5)
				c.ChoiceCreationFee = iov(3)
			},
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(10)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
					WantErr:     allowance.ErrInsufficientAllowance,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          approveTx(alice, iov(8)),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{bobCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
					WantErr:     errors.ErrUnauthorized,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
					WantErr:     allowance.ErrInsufficientAllowance,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{carolCond},
					Tx:          approveTx(carol, iov(3)),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{carolCond},
					Tx:          createChoiceTx(carol, choiceFunds, 0, 0),
					WantErr:     errors.ErrAmount,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, arenaFunds, iov(5))
				assertFunds(t, db, choiceFunds, iov(3))
				assertFunds(t, db, alice, iov(2))

				q := NewQuerier()
				if id, err := q.NextTopicID(db); err != nil || id != 1 {
					t.Fatalf("want next topic 1, got %d, %v", id, err)
				}
				if id, err := q.NextChoiceID(db, 0); err != nil || id != 1 {
					t.Fatalf("want next choice 1, got %d, %v", id, err)
				}
			},
		},
		"fee bounds are enforced on creation": {
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 5001, 0),
					WantErr:     ErrTopicFeeExceeded,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 5000, 5001),
					WantErr:     ErrAccumulativeFeeExceeded,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
					WantErr:     errors.ErrNotFound,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 5000, 4000),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 2001),
					WantErr:     ErrHighFeePercentage,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 1001),
					WantErr:     ErrAccumulativeFeeExceeded,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 1000),
				},
			},
		},
		"contribution is validated before any funds are moved": {
			Conf: func(c *Configuration) {
				c.MinContribution = iov(2)
			},
			Funds: []AccountBalance{
				{Wallet: alice, Amount: iov(5)},
				{Wallet: bob, Amount: iov(5)},
			},
			Allowances: []AccountBalance{
				{Wallet: alice, Amount: iov(100)},
			},
			Requests: []Request{
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createTopicTx(alice, topicFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          createChoiceTx(alice, choiceFunds, 0, 0),
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(1)),
					WantErr:     ErrBelowMinimumContribution,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, coin.NewCoin(3, 0, "ETH")),
					WantErr:     errors.ErrCurrency,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{bobCond},
					Tx:          contributeTx(alice, 0, 0, iov(3)),
					WantErr:     errors.ErrUnauthorized,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{bobCond},
					Tx:          contributeTx(bob, 0, 0, iov(3)),
					WantErr:     allowance.ErrInsufficientAllowance,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(6)),
					WantErr:     errors.ErrAmount,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 3, 0, iov(3)),
					WantErr:     errors.ErrNotFound,
				},
				{
					BlockHeight: 10,
					Conditions:  []weave.Condition{aliceCond},
					Tx:          contributeTx(alice, 0, 0, iov(2)),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, alice, iov(3))
				assertFunds(t, db, bob, iov(5))
				assertTotals(t, db, 10, iov(2), iov(0))
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "arena", "allowance", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			cashctrl := cash.NewController(cash.NewBucket())
			ctrl := allowance.NewController(cashctrl)
			RegisterRoutes(rt, auth, ctrl)

			// Required for approving the arena to spend funds.
			allowance.RegisterRoutes(rt, auth, ctrl)

			for _, b := range tc.Funds {
				if err := cashctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}
			for _, a := range tc.Allowances {
				if err := ctrl.Approve(db, a.Wallet, SpenderAddress(), a.Amount); err != nil {
					t.Fatalf("cannot approve %q: %s", a.Wallet, err)
				}
			}

			conf := Configuration{
				Metadata:        &weave.Metadata{Schema: 1},
				Name:            "test arena",
				Token:           "IOV",
				Admin:           adminCond.Address(),
				Funds:           arenaFunds,
				MinContribution: iov(1),
				MaxTopicFee:     5000,
				MaxChoiceFee:    5000,
			}
			if tc.Conf != nil {
				tc.Conf(&conf)
			}
			if err := gconf.Save(db, "arena", &conf); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func iov(whole int64) coin.Coin {
	return coin.NewCoin(whole, 0, "IOV")
}

func createTopicTx(creator, funds weave.Address, topicFee, contributorFee uint32) weave.Tx {
	return createTopicWithRateTx(creator, funds, topicFee, contributorFee, MaxRate)
}

func createTopicWithRateTx(creator, funds weave.Address, topicFee, contributorFee, accrualRate uint32) weave.Tx {
	return &weavetest.Tx{Msg: &CreateTopicMsg{
		Metadata:                 &weave.Metadata{Schema: 1},
		Creator:                  creator,
		CycleLength:              100,
		TopicFee:                 topicFee,
		MaxChoiceFee:             2000,
		ContributorFee:           contributorFee,
		RelativeSupportThreshold: 500,
		FundingPeriod:            1000,
		FundingPercentage:        5000,
		Funds:                    funds,
		AccrualRate:              accrualRate,
	}}
}

func createChoiceTx(creator, funds weave.Address, topicID uint64, fee uint32) weave.Tx {
	return &weavetest.Tx{Msg: &CreateChoiceMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Creator:     creator,
		TopicID:     topicID,
		Description: "a choice",
		Funds:       funds,
		Fee:         fee,
	}}
}

func contributeTx(contributor weave.Address, topicID, choiceID uint64, amount coin.Coin) weave.Tx {
	return &weavetest.Tx{Msg: &ContributeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Contributor: contributor,
		TopicID:     topicID,
		ChoiceID:    choiceID,
		Amount:      amount,
	}}
}

func withdrawTx(owner weave.Address, topicID, choiceID, index uint64) weave.Tx {
	return &weavetest.Tx{Msg: &WithdrawMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		TopicID:  topicID,
		ChoiceID: choiceID,
		Index:    index,
	}}
}

func withdrawAllTx(owner weave.Address) weave.Tx {
	return &weavetest.Tx{Msg: &WithdrawAllMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
	}}
}

func transferPositionsTx(owner, recipient weave.Address, indexes ...uint64) weave.Tx {
	return &weavetest.Tx{Msg: &TransferPositionsMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Owner:     owner,
		Recipient: recipient,
		Indexes:   indexes,
	}}
}

func transferAllTx(owner, recipient weave.Address) weave.Tx {
	return &weavetest.Tx{Msg: &TransferAllPositionsMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Owner:     owner,
		Recipient: recipient,
	}}
}

func removeTopicTx(topicID uint64) weave.Tx {
	return &weavetest.Tx{Msg: &RemoveTopicMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TopicID:  topicID,
	}}
}

func removeChoiceTx(topicID, choiceID uint64) weave.Tx {
	return &weavetest.Tx{Msg: &RemoveChoiceMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TopicID:  topicID,
		ChoiceID: choiceID,
	}}
}

func approveTx(owner weave.Address, amount coin.Coin) weave.Tx {
	return &weavetest.Tx{Msg: &allowance.ApproveMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Spender:  SpenderAddress(),
		Amount:   amount,
	}}
}

// assertPosition checks the state of a position on the first choice of the
// first topic.
func assertPosition(t testing.TB, db weave.KVStore, owner weave.Address, index uint64, height int64, tokens, shares coin.Coin) {
	t.Helper()

	p, err := NewQuerier().PositionOf(db, 0, 0, owner, index, height)
	if err != nil {
		t.Fatalf("position %d at %d: %+v", index, height, err)
	}
	if !p.Tokens.Equals(tokens) {
		t.Fatalf("position %d at %d: want %v tokens, got %v", index, height, tokens, p.Tokens)
	}
	if !p.Shares.Equals(shares) {
		t.Fatalf("position %d at %d: want %v shares, got %v", index, height, shares, p.Shares)
	}
}

func assertTotals(t testing.TB, db weave.KVStore, height int64, tokens, shares coin.Coin) {
	t.Helper()

	gotTokens, gotShares, err := NewQuerier().ChoiceTotals(db, 0, 0, height)
	if err != nil {
		t.Fatalf("choice totals: %+v", err)
	}
	if !gotTokens.Equals(tokens) {
		t.Fatalf("want %v total tokens at %d, got %v", tokens, height, gotTokens)
	}
	if !gotShares.Equals(shares) {
		t.Fatalf("want %v total shares at %d, got %v", shares, height, gotShares)
	}
}

// assertLedger checks that the choice totals are equal to the sum of all
// positions of given owners, evaluated at the same height.
func assertLedger(t testing.TB, db weave.KVStore, height int64, owners ...weave.Address) {
	t.Helper()

	q := NewQuerier()
	tokens, shares := iov(0), iov(0)
	for _, owner := range owners {
		n, err := q.PositionsLength(db, 0, 0, owner)
		if err != nil {
			t.Fatalf("positions length: %+v", err)
		}
		for i := uint64(0); i < n; i++ {
			p, err := q.PositionOf(db, 0, 0, owner, i, height)
			if ErrPositionNotFound.Is(err) {
				continue
			}
			if err != nil {
				t.Fatalf("position %d: %+v", i, err)
			}
			tokens, _ = tokens.Add(p.Tokens)
			shares, _ = shares.Add(p.Shares)
		}
	}
	assertTotals(t, db, height, tokens, shares)
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil && !errors.ErrNotFound.Is(err) {
		t.Fatalf("balance: %s", err)
	}
	got := coin.NewCoin(0, 0, funds.Ticker)
	for _, c := range coins {
		if c.Ticker == funds.Ticker {
			got = *c
		}
	}
	if !got.Equals(funds) {
		t.Fatalf("want %v funds, got %v", funds, got)
	}
}
