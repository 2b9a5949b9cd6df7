package allowance

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferFromConsumesAllowance(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "allowance", "cash")

	cashctrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashctrl)

	owner := weavetest.NewCondition().Address()
	spender := weavetest.NewCondition().Address()
	recipient := weavetest.NewCondition().Address()

	require.NoError(t, cashctrl.CoinMint(db, owner, coin.NewCoin(100, 0, "IOV")))

	err := ctrl.TransferFrom(db, spender, owner, recipient, coin.NewCoin(1, 0, "IOV"))
	assert.True(t, ErrInsufficientAllowance.Is(err), "got %+v", err)

	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(10, 0, "IOV")))
	require.NoError(t, ctrl.CanTransferFrom(db, spender, owner, coin.NewCoin(10, 0, "IOV")))
	require.NoError(t, ctrl.TransferFrom(db, spender, owner, recipient, coin.NewCoin(4, 0, "IOV")))

	left, err := ctrl.Allowance(db, owner, spender, "IOV")
	require.NoError(t, err)
	assert.True(t, left.Equals(coin.NewCoin(6, 0, "IOV")), "got %v", left)

	err = ctrl.CanTransferFrom(db, spender, owner, coin.NewCoin(7, 0, "IOV"))
	assert.True(t, ErrInsufficientAllowance.Is(err), "got %+v", err)

	require.NoError(t, ctrl.TransferFrom(db, spender, owner, recipient, coin.NewCoin(6, 0, "IOV")))
	left, err = ctrl.Allowance(db, owner, spender, "IOV")
	require.NoError(t, err)
	assert.True(t, left.IsZero())

	balance, err := ctrl.Balance(db, recipient)
	require.NoError(t, err)
	require.Len(t, balance, 1)
	assert.True(t, balance[0].Equals(coin.NewCoin(10, 0, "IOV")))
}

func TestCanTransferFromRequiresFunds(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "allowance", "cash")

	cashctrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashctrl)

	owner := weavetest.NewCondition().Address()
	spender := weavetest.NewCondition().Address()

	require.NoError(t, cashctrl.CoinMint(db, owner, coin.NewCoin(2, 0, "IOV")))
	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(50, 0, "IOV")))

	err := ctrl.CanTransferFrom(db, spender, owner, coin.NewCoin(3, 0, "IOV"))
	assert.True(t, errors.ErrAmount.Is(err), "got %+v", err)

	// A different currency is never covered by an allowance.
	err = ctrl.CanTransferFrom(db, spender, owner, coin.NewCoin(1, 0, "ETH"))
	assert.True(t, ErrInsufficientAllowance.Is(err), "got %+v", err)

	assert.NoError(t, ctrl.CanTransferFrom(db, spender, owner, coin.NewCoin(0, 0, "IOV")))
}

func TestApproveZeroRevokes(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "allowance")

	ctrl := NewController(cash.NewController(cash.NewBucket()))
	owner := weavetest.NewCondition().Address()
	spender := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(5, 0, "IOV")))
	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(0, 0, "IOV")))
	// Revoking a missing allowance is not an error.
	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(0, 0, "IOV")))

	left, err := ctrl.Allowance(db, owner, spender, "IOV")
	require.NoError(t, err)
	assert.True(t, left.IsZero())
}
