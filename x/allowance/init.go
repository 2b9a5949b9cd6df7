package allowance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// Initializer fulfils the Initializer interface to load allowances from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var allowances []struct {
		Owner   weave.Address `json:"owner"`
		Spender weave.Address `json:"spender"`
		Amount  coin.Coin     `json:"amount"`
	}
	if err := opts.ReadOptions("allowances", &allowances); err != nil {
		return err
	}
	ctrl := NewController(cash.NewController(cash.NewBucket()))
	for i, a := range allowances {
		msg := ApproveMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    a.Owner,
			Spender:  a.Spender,
			Amount:   a.Amount,
		}
		if err := msg.Validate(); err != nil {
			return errors.Wrapf(err, "allowance %d is invalid", i)
		}
		if err := ctrl.Approve(db, a.Owner, a.Spender, a.Amount); err != nil {
			return errors.Wrapf(err, "store allowance %d", i)
		}
	}
	return nil
}
