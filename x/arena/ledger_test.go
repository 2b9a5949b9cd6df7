package arena

import (
	"math/rand"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestSettlePosition(t *testing.T) {
	p := Position{
		Tokens:         coin.NewCoin(11, 0, "IOV"),
		Shares:         coin.NewCoin(0, 0, "IOV"),
		CreatedAtCycle: 3,
		SettledCycle:   3,
	}

	SettlePosition(&p, MaxRate, 3)
	assert.Equal(t, true, p.Shares.IsZero())

	SettlePosition(&p, MaxRate, 4)
	assert.Equal(t, true, p.Shares.Equals(coin.NewCoin(11, 0, "IOV")))

	// Settling again within the same cycle does not change anything.
	SettlePosition(&p, MaxRate, 4)
	assert.Equal(t, true, p.Shares.Equals(coin.NewCoin(11, 0, "IOV")))

	// An older cycle never takes shares back.
	SettlePosition(&p, MaxRate, 2)
	assert.Equal(t, true, p.Shares.Equals(coin.NewCoin(11, 0, "IOV")))
	assert.Equal(t, int64(4), p.SettledCycle)

	SettlePosition(&p, MaxRate, 7)
	assert.Equal(t, true, p.Shares.Equals(coin.NewCoin(44, 0, "IOV")))

	p.Tokens = coin.NewCoin(0, 0, "IOV")
	SettlePosition(&p, MaxRate, 100)
	assert.Equal(t, true, p.Shares.Equals(coin.NewCoin(44, 0, "IOV")))
}

func TestSettleWithAccrualRate(t *testing.T) {
	cases := map[string]struct {
		rate   uint32
		tokens coin.Coin
		cycles int64
		want   coin.Coin
	}{
		"full rate": {
			rate:   MaxRate,
			tokens: coin.NewCoin(11, 0, "IOV"),
			cycles: 2,
			want:   coin.NewCoin(22, 0, "IOV"),
		},
		"quarter rate": {
			rate:   2500,
			tokens: coin.NewCoin(11, 0, "IOV"),
			cycles: 1,
			want:   coin.NewCoin(2, 750000000, "IOV"),
		},
		"smallest rate rounds down": {
			rate:   1,
			tokens: coin.NewCoin(0, 9999, "IOV"),
			cycles: 1,
			want:   coin.NewCoin(0, 0, "IOV"),
		},
		"rate applies to every elapsed cycle": {
			rate:   150,
			tokens: coin.NewCoin(200, 0, "IOV"),
			cycles: 3,
			want:   coin.NewCoin(9, 0, "IOV"),
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			p := Position{Tokens: tc.tokens, Shares: coin.NewCoin(0, 0, "IOV")}
			SettlePosition(&p, tc.rate, tc.cycles)
			assert.Equal(t, true, p.Shares.Equals(tc.want))

			c := Choice{
				TotalTokens:     tc.tokens,
				TotalShares:     coin.NewCoin(0, 0, "IOV"),
				ClaimableShares: coin.NewCoin(0, 0, "IOV"),
			}
			SettleChoice(&c, tc.rate, tc.cycles)
			assert.Equal(t, true, c.TotalShares.Equals(tc.want))
			assert.Equal(t, true, c.ClaimableShares.Equals(tc.want))
		})
	}
}

func TestSettleChoice(t *testing.T) {
	c := Choice{
		TotalTokens:     coin.NewCoin(2, 500000000, "IOV"),
		TotalShares:     coin.NewCoin(1, 0, "IOV"),
		ClaimableShares: coin.NewCoin(0, 0, "IOV"),
		SettledCycle:    1,
	}
	SettleChoice(&c, MaxRate, 3)
	assert.Equal(t, true, c.TotalShares.Equals(coin.NewCoin(6, 0, "IOV")))
	assert.Equal(t, true, c.ClaimableShares.Equals(coin.NewCoin(5, 0, "IOV")))
	assert.Equal(t, int64(3), c.SettledCycle)

	SettleChoice(&c, MaxRate, 3)
	assert.Equal(t, true, c.TotalShares.Equals(coin.NewCoin(6, 0, "IOV")))
}

func TestSharesStopGrowingAtTheLimit(t *testing.T) {
	limit := coin.NewCoin(coin.MaxInt, coin.MaxFrac, "IOV")

	c := Choice{
		TotalTokens:     coin.NewCoin(100000000, 0, "IOV"),
		TotalShares:     coin.NewCoin(0, 0, "IOV"),
		ClaimableShares: coin.NewCoin(0, 0, "IOV"),
	}
	SettleChoice(&c, MaxRate, 10000000)
	assert.Equal(t, true, c.TotalShares.Equals(limit))
	assert.Equal(t, true, c.ClaimableShares.Equals(limit))

	SettleChoice(&c, MaxRate, 20000000)
	assert.Equal(t, true, c.TotalShares.Equals(limit))

	p := Position{
		Tokens: coin.NewCoin(100000000, 0, "IOV"),
		Shares: coin.NewCoin(coin.MaxInt-1, 0, "IOV"),
	}
	SettlePosition(&p, MaxRate, 1)
	assert.Equal(t, true, p.Shares.Equals(limit))

	assert.Equal(t, true, subShares(limit, coin.NewCoin(coin.MaxInt, 0, "IOV")).Equals(coin.NewCoin(0, coin.MaxFrac, "IOV")))
	assert.Equal(t, true, subShares(coin.NewCoin(1, 0, "IOV"), limit).IsZero())
}

// TestLedgerInvariants runs a random sequence of ledger operations and after
// every step checks that the choice totals are the sums of all positions
// and that no live position ever loses shares.
func TestLedgerInvariants(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "arena")

	l := newLedger()
	choice := &Choice{
		TopicID:         1,
		ID:              2,
		TotalTokens:     coin.NewCoin(0, 0, "IOV"),
		TotalShares:     coin.NewCoin(0, 0, "IOV"),
		ClaimableShares: coin.NewCoin(0, 0, "IOV"),
		ContributorPool: coin.NewCoin(0, 0, "IOV"),
	}
	owners := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}

	type slot struct {
		owner string
		index uint64
	}
	seen := make(map[slot]coin.Coin)

	rnd := rand.New(rand.NewSource(42))
	var cycle int64
	for step := 0; step < 300; step++ {
		cycle += int64(rnd.Intn(3))
		SettleChoice(choice, MaxRate, cycle)

		owner := owners[rnd.Intn(len(owners))]
		switch op := rnd.Intn(4); op {
		case 0, 1:
			amount := coin.NewCoin(int64(rnd.Intn(1000)+1), int64(rnd.Intn(int(coin.FracUnit))), "IOV")
			if _, _, err := l.contribute(db, choice, owner, amount, cycle); err != nil {
				t.Fatalf("step %d: contribute: %+v", step, err)
			}
		case 2:
			indexes, err := l.activeIndexes(db, choice, owner)
			assert.Nil(t, err)
			if len(indexes) == 0 {
				continue
			}
			index := indexes[rnd.Intn(len(indexes))]
			if _, err := l.withdraw(db, choice, owner, index, MaxRate, cycle); err != nil {
				t.Fatalf("step %d: withdraw: %+v", step, err)
			}
		case 3:
			indexes, err := l.liveIndexes(db, choice, owner)
			assert.Nil(t, err)
			if len(indexes) == 0 {
				continue
			}
			recipient := owners[(rnd.Intn(len(owners)-1)+1+indexOf(owners, owner))%len(owners)]
			batch := indexes[:rnd.Intn(len(indexes))+1]
			if err := l.transfer(db, choice, owner, recipient, batch, MaxRate, cycle); err != nil {
				t.Fatalf("step %d: transfer: %+v", step, err)
			}
		}

		tokens, shares := coin.NewCoin(0, 0, "IOV"), coin.NewCoin(0, 0, "IOV")
		for _, o := range owners {
			positions, err := l.holderPositions(db, choice, o)
			assert.Nil(t, err)
			for _, p := range positions {
				if p.Tombstoned() {
					delete(seen, slot{owner: o.String(), index: p.Index})
					continue
				}
				SettlePosition(p, MaxRate, cycle)
				key := slot{owner: o.String(), index: p.Index}
				if prev, ok := seen[key]; ok && p.Shares.Compare(prev) < 0 {
					t.Fatalf("step %d: shares of %v decreased from %v to %v", step, key, prev, p.Shares)
				}
				seen[key] = p.Shares
				tokens, _ = tokens.Add(p.Tokens)
				shares, _ = shares.Add(p.Shares)
			}
		}
		if !tokens.Equals(choice.TotalTokens) {
			t.Fatalf("step %d: want %v total tokens, positions hold %v", step, choice.TotalTokens, tokens)
		}
		if !shares.Equals(choice.TotalShares) {
			t.Fatalf("step %d: want %v total shares, positions hold %v", step, choice.TotalShares, shares)
		}
		if choice.ClaimableShares.Compare(choice.TotalShares) > 0 {
			t.Fatalf("step %d: claimable shares %v above total %v", step, choice.ClaimableShares, choice.TotalShares)
		}
	}
}

func indexOf(addrs []weave.Address, a weave.Address) int {
	for i, x := range addrs {
		if x.Equals(a) {
			return i
		}
	}
	return -1
}

func TestLedgerTransferIsAtomic(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "arena")

	l := newLedger()
	choice := &Choice{
		TotalTokens:     coin.NewCoin(0, 0, "IOV"),
		TotalShares:     coin.NewCoin(0, 0, "IOV"),
		ClaimableShares: coin.NewCoin(0, 0, "IOV"),
		ContributorPool: coin.NewCoin(0, 0, "IOV"),
	}
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	for _, amount := range []int64{10000, 20000} {
		_, _, err := l.contribute(db, choice, alice, coin.NewCoin(amount, 0, "IOV"), 0)
		assert.Nil(t, err)
	}

	err := l.transfer(db, choice, alice, bob, []uint64{0, 1, 2}, MaxRate, 1)
	assert.IsErr(t, ErrPositionNotFound, err)

	n, err := l.positionsLength(db, choice, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), n)

	p, err := l.position(db, choice, alice, 0, MaxRate, 1)
	assert.Nil(t, err)
	assert.Equal(t, true, p.Tokens.Equals(coin.NewCoin(10000, 0, "IOV")))
}
