package arena

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// CapitalLedger moves the arena token between accounts. Contributions and
// creation fees are pulled from the payer account by the arena spender
// address, so the payer must have approved an allowance for it first.
type CapitalLedger interface {
	Balance(db weave.KVStore, owner weave.Address) (coin.Coins, error)
	// CanTransferFrom returns an error if TransferFrom with the same
	// arguments would fail.
	CanTransferFrom(db weave.KVStore, spender, from weave.Address, amount coin.Coin) error
	TransferFrom(db weave.KVStore, spender, from, to weave.Address, amount coin.Coin) error
	Transfer(db weave.KVStore, from, to weave.Address, amount coin.Coin) error
}
