package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySettlesAtQueryHeight(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	iov := func(n int64) coin.Coin { return coin.NewCoin(n, 0, "IOV") }

	node := &fakeClient{height: 45}
	node.set("/topics", arena.TopicKey(1), &arena.Topic{
		Metadata:    &weave.Metadata{Schema: 1},
		ID:          1,
		Creator:     alice,
		Funds:       alice,
		CreatedAt:   5,
		CycleLength: 10,
		AccrualRate: arena.MaxRate,
	})
	node.set("/choices", arena.ChoiceKey(1, 0), &arena.Choice{
		Metadata:        &weave.Metadata{Schema: 1},
		TopicID:         1,
		Creator:         alice,
		Funds:           alice,
		Description:     "spaces",
		TotalTokens:     iov(3),
		TotalShares:     iov(0),
		ClaimableShares: iov(0),
		ContributorPool: iov(0),
		SettledCycle:    1,
	})
	node.set("/positions/owner", alice, &arena.Position{
		Metadata:       &weave.Metadata{Schema: 1},
		TopicID:        1,
		Owner:          alice,
		CreatedAtCycle: 1,
		SettledCycle:   1,
		Tokens:         iov(3),
		Shares:         iov(0),
	})
	node.set("/positions/owner", alice, &arena.Position{
		Metadata:     &weave.Metadata{Schema: 1},
		TopicID:      1,
		Owner:        alice,
		Index:        1,
		SettledCycle: 1,
		Tokens:       iov(0),
		Shares:       iov(0),
	})
	withClient(t, node)

	// Height 45 is the fourth cycle of a topic created at 5.
	out, err := runCmd(t, nil, "query", "choice", "1", "0")
	require.NoError(t, err)
	var choice arena.Choice
	require.NoError(t, json.Unmarshal(out, &choice))
	assert.Equal(t, int64(4), choice.SettledCycle)
	assert.Equal(t, iov(9), choice.TotalShares)
	assert.Equal(t, iov(3), choice.TotalTokens)

	out, err = runCmd(t, nil, "query", "positions", alice.String())
	require.NoError(t, err)
	var positions []*arena.Position
	require.NoError(t, json.Unmarshal(out, &positions))
	require.Len(t, positions, 1, "tombstoned position must be skipped")
	assert.Equal(t, iov(9), positions[0].Shares)

	out, err = runCmd(t, nil, "query", "topic", "1")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"cycle_length": 10`)

	_, err = runCmd(t, nil, "query", "topic", "2")
	require.Error(t, err)

	_, err = runCmd(t, nil, "query", "topic", "first")
	require.Error(t, err)
}

func TestQuerySettlesWithTopicAccrualRate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	iov := func(n int64) coin.Coin { return coin.NewCoin(n, 0, "IOV") }

	// The height reported with the query result decides the cycle.
	node := &fakeClient{height: 35}
	node.set("/topics", arena.TopicKey(2), &arena.Topic{
		Metadata:    &weave.Metadata{Schema: 1},
		ID:          2,
		Creator:     alice,
		Funds:       alice,
		CycleLength: 10,
		AccrualRate: 2500,
	})
	node.set("/choices", arena.ChoiceKey(2, 0), &arena.Choice{
		Metadata:        &weave.Metadata{Schema: 1},
		TopicID:         2,
		Creator:         alice,
		Funds:           alice,
		Description:     "tabs",
		TotalTokens:     iov(3),
		TotalShares:     iov(0),
		ClaimableShares: iov(0),
		ContributorPool: iov(0),
	})
	withClient(t, node)

	out, err := runCmd(t, nil, "query", "choice", "2", "0")
	require.NoError(t, err)
	var choice arena.Choice
	require.NoError(t, json.Unmarshal(out, &choice))
	assert.Equal(t, int64(3), choice.SettledCycle)
	assert.Equal(t, coin.NewCoin(2, 250000000, "IOV"), choice.TotalShares)
}

func TestQueryAllowancesAndNonce(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	node := &fakeClient{}
	node.set("/allowances/owner", alice, &allowance.Allowance{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice,
		Spender:  arena.SpenderAddress(),
		Amount:   coin.NewCoin(12, 0, "IOV"),
	})
	withClient(t, node)

	out, err := runCmd(t, nil, "query", "allowances", alice.String())
	require.NoError(t, err)
	var res []*allowance.Allowance
	require.NoError(t, json.Unmarshal(out, &res))
	require.Len(t, res, 1)
	assert.Equal(t, coin.NewCoin(12, 0, "IOV"), res[0].Amount)

	// An account that never signed anything starts with zero.
	out, err = runCmd(t, nil, "query", "nonce", alice.String())
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(string(out)))
}
