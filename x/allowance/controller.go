package allowance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x/cash"
)

// Controller moves funds held by x/cash. Transfers made on behalf of an owner
// consume the allowance that owner granted to the spender.
type Controller struct {
	cash       cash.Controller
	allowances orm.ModelBucket
}

// NewController returns a controller that keeps balances in given cash
// controller.
func NewController(ctrl cash.Controller) *Controller {
	return &Controller{
		cash:       ctrl,
		allowances: NewAllowanceBucket(),
	}
}

// Balance returns all coins owned by given account.
func (c *Controller) Balance(db weave.KVStore, owner weave.Address) (coin.Coins, error) {
	return c.cash.Balance(db, owner)
}

// Allowance returns the amount that the spender can still move out of the
// owner account. A zero coin is returned if nothing was approved.
func (c *Controller) Allowance(db weave.ReadOnlyKVStore, owner, spender weave.Address, ticker string) (coin.Coin, error) {
	var a Allowance
	switch err := c.allowances.One(db, allowanceKey(owner, spender, ticker), &a); {
	case err == nil:
		return a.Amount, nil
	case errors.ErrNotFound.Is(err):
		return coin.NewCoin(0, 0, ticker), nil
	default:
		return coin.Coin{}, errors.Wrap(err, "cannot load allowance")
	}
}

// Approve sets the allowance of the spender. Any previous value is
// overwritten. Approving a zero amount removes the allowance.
func (c *Controller) Approve(db weave.KVStore, owner, spender weave.Address, amount coin.Coin) error {
	key := allowanceKey(owner, spender, amount.Ticker)
	if amount.IsZero() {
		switch err := c.allowances.Delete(db, key); {
		case err == nil, errors.ErrNotFound.Is(err):
			return nil
		default:
			return errors.Wrap(err, "cannot delete allowance")
		}
	}
	a := Allowance{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Spender:  spender,
		Amount:   amount,
	}
	if _, err := c.allowances.Put(db, key, &a); err != nil {
		return errors.Wrap(err, "cannot store allowance")
	}
	return nil
}

// CanTransferFrom returns an error if a TransferFrom call with the same
// arguments would fail because of a missing allowance or missing funds.
func (c *Controller) CanTransferFrom(db weave.KVStore, spender, from weave.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	allowed, err := c.Allowance(db, from, spender, amount.Ticker)
	if err != nil {
		return err
	}
	if allowed.Compare(amount) < 0 {
		return errors.Wrapf(ErrInsufficientAllowance, "%s allowed, %s requested", allowed, amount)
	}
	return hasFunds(db, c.cash, from, amount)
}

// TransferFrom moves funds from one account to another on behalf of the
// owner. The spender allowance is decreased by the transferred amount.
func (c *Controller) TransferFrom(db weave.KVStore, spender, from, to weave.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	allowed, err := c.Allowance(db, from, spender, amount.Ticker)
	if err != nil {
		return err
	}
	left, err := allowed.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "allowance")
	}
	if !left.IsNonNegative() {
		return errors.Wrapf(ErrInsufficientAllowance, "%s allowed, %s requested", allowed, amount)
	}
	if err := c.Approve(db, from, spender, left); err != nil {
		return err
	}
	return c.Transfer(db, from, to, amount)
}

// Transfer moves funds between two accounts. Authorization of the source
// account is the responsibility of the caller.
func (c *Controller) Transfer(db weave.KVStore, from, to weave.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	return cash.MoveCoins(db, c.cash, from, to, []*coin.Coin{&amount})
}

// hasFunds returns no error if given wallet contains at least given amount of
// funds.
func hasFunds(db weave.KVStore, ctrl cash.Controller, wallet weave.Address, funds coin.Coin) error {
	coins, err := ctrl.Balance(db, wallet)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return errors.Wrap(errors.ErrAmount, "no funds")
	default:
		return errors.Wrap(err, "balance")
	}
	for _, c := range coins {
		if c.Ticker != funds.Ticker {
			continue
		}
		if c.Compare(funds) >= 0 {
			return nil
		}
	}
	return errors.Wrap(errors.ErrAmount, "not enough funds")
}
