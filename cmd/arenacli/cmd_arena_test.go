package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributeBuildsTransaction(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	out, err := runCmd(t, nil, "contribute",
		"--contributor", alice.String(),
		"--topic", "3",
		"--choice", "1",
		"--amount", "2.5 IOV")
	require.NoError(t, err)

	tx, _, err := readTx(bytes.NewReader(out))
	require.NoError(t, err)
	msg, err := tx.GetMsg()
	require.NoError(t, err)

	m, ok := msg.(*arena.ContributeMsg)
	require.True(t, ok, "unexpected message %T", msg)
	assert.Equal(t, alice, m.Contributor)
	assert.Equal(t, uint64(3), m.TopicID)
	assert.Equal(t, uint64(1), m.ChoiceID)
	assert.Equal(t, coin.NewCoin(2, 500000000, "IOV"), m.Amount)
}

func TestCreateTopicAccrualRate(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	cases := map[string]struct {
		args []string
		want uint32
	}{
		"full accrual by default": {
			want: arena.MaxRate,
		},
		"fractional accrual": {
			args: []string{"--accrual-rate", "150"},
			want: 150,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			args := append([]string{"create-topic",
				"--creator", alice.String(),
				"--funds", alice.String(),
				"--cycle", "100",
			}, tc.args...)
			out, err := runCmd(t, nil, args...)
			require.NoError(t, err)

			tx, _, err := readTx(bytes.NewReader(out))
			require.NoError(t, err)
			msg, err := tx.GetMsg()
			require.NoError(t, err)
			m, ok := msg.(*arena.CreateTopicMsg)
			require.True(t, ok, "unexpected message %T", msg)
			assert.Equal(t, tc.want, m.AccrualRate)
		})
	}

	_, err := runCmd(t, nil, "create-topic",
		"--creator", alice.String(),
		"--funds", alice.String(),
		"--cycle", "100",
		"--accrual-rate", "0")
	require.Error(t, err)
}

func TestBuilderRejectsInvalidMessage(t *testing.T) {
	// Contributor is required.
	_, err := runCmd(t, nil, "contribute", "--topic", "1")
	require.Error(t, err)

	_, err = runCmd(t, nil, "contribute", "--contributor", "not an address")
	require.Error(t, err)
}

func TestTransferPositionsBuildsTransaction(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	cases := map[string]struct {
		indexes []string
		check   func(t *testing.T, msg interface{})
	}{
		"single index": {
			indexes: []string{"--index", "4"},
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*arena.TransferPositionMsg)
				require.True(t, ok, "unexpected message %T", msg)
				assert.Equal(t, uint64(4), m.Index)
			},
		},
		"many indexes": {
			indexes: []string{"--index", "4,0", "--index", "7"},
			check: func(t *testing.T, msg interface{}) {
				m, ok := msg.(*arena.TransferPositionsMsg)
				require.True(t, ok, "unexpected message %T", msg)
				assert.Equal(t, []uint64{4, 0, 7}, m.Indexes)
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			args := append([]string{"transfer-positions",
				"--owner", alice.String(),
				"--recipient", bob.String(),
				"--topic", "2",
			}, tc.indexes...)
			out, err := runCmd(t, nil, args...)
			require.NoError(t, err)

			tx, _, err := readTx(bytes.NewReader(out))
			require.NoError(t, err)
			msg, err := tx.GetMsg()
			require.NoError(t, err)
			tc.check(t, msg)
		})
	}
}

func TestApproveDefaultsToArenaSpender(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	out, err := runCmd(t, nil, "approve", "--owner", alice.String(), "--amount", "50 IOV")
	require.NoError(t, err)

	tx, _, err := readTx(bytes.NewReader(out))
	require.NoError(t, err)
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	m, ok := msg.(*allowance.ApproveMsg)
	require.True(t, ok, "unexpected message %T", msg)
	assert.Equal(t, arena.SpenderAddress(), m.Spender)
	assert.Equal(t, coin.NewCoin(50, 0, "IOV"), m.Amount)
}

func TestSendTokensWithFee(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	out, err := runCmd(t, nil, "send-tokens", "--src", alice.String(), "--dst", bob.String(), "--amount", "3 IOV")
	require.NoError(t, err)

	out, err = runCmd(t, bytes.NewReader(out), "with-fee", "--amount", "0.01 IOV")
	require.NoError(t, err)

	tx, _, err := readTx(bytes.NewReader(out))
	require.NoError(t, err)
	require.NotNil(t, tx.Fees)
	assert.Equal(t, coin.NewCoinp(0, 10000000, "IOV"), tx.Fees.Fees)

	msg, err := tx.GetMsg()
	require.NoError(t, err)
	send, ok := msg.(*cash.SendMsg)
	require.True(t, ok, "unexpected message %T", msg)
	assert.Equal(t, bob, send.Destination)

	// A fee must be provided.
	_, err = runCmd(t, bytes.NewReader(out), "with-fee")
	require.Error(t, err)
}
