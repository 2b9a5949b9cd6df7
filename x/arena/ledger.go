package arena

import (
	"math/big"
	"sort"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// SettlePosition brings the shares of a position up to given cycle. Every
// full cycle that elapsed since the position was last settled adds the
// accrual rate part of the position tokens to its shares. Settling twice for
// the same cycle is a no-op. Shares stop growing at maxShares.
func SettlePosition(p *Position, rate uint32, cycle int64) {
	if cycle <= p.SettledCycle {
		return
	}
	p.Shares = addShares(p.Shares, accrue(p.Tokens, rate, cycle-p.SettledCycle))
	p.SettledCycle = cycle
}

// SettleChoice brings the aggregates of a choice up to given cycle. The
// total amount of tokens is constant between two operations, so the total
// shares grow by the same amount as the sum of all settled positions.
func SettleChoice(c *Choice, rate uint32, cycle int64) {
	if cycle <= c.SettledCycle {
		return
	}
	accrued := accrue(c.TotalTokens, rate, cycle-c.SettledCycle)
	c.TotalShares = addShares(c.TotalShares, accrued)
	c.ClaimableShares = addShares(c.ClaimableShares, accrued)
	c.SettledCycle = cycle
}

// accrue returns floor(tokens * cycles * rate / MaxRate), limited to
// maxShares.
func accrue(tokens coin.Coin, rate uint32, cycles int64) coin.Coin {
	n := atomic(tokens)
	n.Mul(n, big.NewInt(cycles))
	n.Mul(n, big.NewInt(int64(rate)))
	n.Quo(n, maxRate)
	return capShares(n, tokens.Ticker)
}

// ledger keeps the positions of all choices. Every method operates on a
// single choice and expects that choice to be already settled to the given
// cycle. Changes to the choice aggregates are applied to the given choice
// instance and must be persisted by the caller.
type ledger struct {
	positions orm.ModelBucket
}

func newLedger() *ledger {
	return &ledger{positions: NewPositionBucket()}
}

// holderPositions returns all positions of the owner on the choice,
// including tombstoned ones, ordered by index.
func (l *ledger) holderPositions(db weave.ReadOnlyKVStore, c *Choice, owner weave.Address) ([]*Position, error) {
	var positions []*Position
	switch _, err := l.positions.ByIndex(db, "holder", HolderKey(c.TopicID, c.ID, owner), &positions); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "holder positions")
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Index < positions[j].Index
	})
	return positions, nil
}

// positionsLength returns the number of positions the owner ever created
// or received on the choice.
func (l *ledger) positionsLength(db weave.ReadOnlyKVStore, c *Choice, owner weave.Address) (uint64, error) {
	positions, err := l.holderPositions(db, c, owner)
	if err != nil {
		return 0, err
	}
	return uint64(len(positions)), nil
}

// position returns the settled position of the owner. Tombstoned positions
// are reported as not found.
func (l *ledger) position(db weave.ReadOnlyKVStore, c *Choice, owner weave.Address, index uint64, rate uint32, cycle int64) (*Position, error) {
	var p Position
	switch err := l.positions.One(db, PositionKey(c.TopicID, c.ID, owner, index), &p); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrPositionNotFound, "no position %d", index)
	default:
		return nil, errors.Wrap(err, "cannot load position")
	}
	if p.Tombstoned() {
		return nil, errors.Wrapf(ErrPositionNotFound, "position %d was moved", index)
	}
	SettlePosition(&p, rate, cycle)
	return &p, nil
}

// contribute creates a new position of the owner holding given tokens.
func (l *ledger) contribute(db weave.KVStore, c *Choice, owner weave.Address, tokens coin.Coin, cycle int64) (*Position, []byte, error) {
	index, err := l.positionsLength(db, c, owner)
	if err != nil {
		return nil, nil, err
	}
	p := Position{
		Metadata:       &weave.Metadata{Schema: 1},
		TopicID:        c.TopicID,
		ChoiceID:       c.ID,
		Owner:          owner,
		Index:          index,
		CreatedAtCycle: cycle,
		SettledCycle:   cycle,
		Tokens:         tokens,
		Shares:         zero(tokens.Ticker),
	}
	key, err := l.positions.Put(db, PositionKey(c.TopicID, c.ID, owner, index), &p)
	if err != nil {
		return nil, nil, errors.Wrap(err, "store position")
	}
	if c.TotalTokens, err = c.TotalTokens.Add(tokens); err != nil {
		return nil, nil, errors.Wrap(err, "total tokens")
	}
	return &p, key, nil
}

// withdrawable returns the settled position if its tokens can be withdrawn.
func (l *ledger) withdrawable(db weave.ReadOnlyKVStore, c *Choice, owner weave.Address, index uint64, rate uint32, cycle int64) (*Position, error) {
	p, err := l.position(db, c, owner, index, rate, cycle)
	if err != nil {
		return nil, err
	}
	if !p.Active() {
		return nil, errors.Wrapf(errors.ErrState, "position %d already withdrawn", index)
	}
	return p, nil
}

// withdraw releases the tokens of a position. The shares of the position are
// kept. The returned amount is the released tokens together with the part of
// the contributor pool earned by the position shares. The last active
// position of a choice receives whatever is left in the pool.
func (l *ledger) withdraw(db weave.KVStore, c *Choice, owner weave.Address, index uint64, rate uint32, cycle int64) (coin.Coin, error) {
	p, err := l.withdrawable(db, c, owner, index, rate, cycle)
	if err != nil {
		return coin.Coin{}, err
	}
	if c.TotalTokens, err = c.TotalTokens.Subtract(p.Tokens); err != nil {
		return coin.Coin{}, errors.Wrap(err, "total tokens")
	}
	bonus := c.ContributorPool
	if c.TotalTokens.IsPositive() {
		if bonus, err = poolShare(c, p.Shares); err != nil {
			return coin.Coin{}, errors.Wrap(err, "pool share")
		}
	}
	c.ClaimableShares = subShares(c.ClaimableShares, p.Shares)
	if c.ContributorPool, err = c.ContributorPool.Subtract(bonus); err != nil {
		return coin.Coin{}, errors.Wrap(err, "contributor pool")
	}
	released, err := p.Tokens.Add(bonus)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "released")
	}
	p.Tokens = zero(p.Tokens.Ticker)
	if _, err := l.positions.Put(db, PositionKey(c.TopicID, c.ID, owner, index), p); err != nil {
		return coin.Coin{}, errors.Wrap(err, "store position")
	}
	return released, nil
}

// poolShare returns the part of the contributor pool that belongs to given
// amount of claimable shares.
func poolShare(c *Choice, shares coin.Coin) (coin.Coin, error) {
	if !shares.IsPositive() || !c.ClaimableShares.IsPositive() || !c.ContributorPool.IsPositive() {
		return zero(c.ContributorPool.Ticker), nil
	}
	if shares.Compare(c.ClaimableShares) >= 0 {
		return c.ContributorPool, nil
	}
	return mulDiv(c.ContributorPool, atomic(shares), atomic(c.ClaimableShares))
}

// activeIndexes returns the indexes of all positions of the owner that still
// hold tokens.
func (l *ledger) activeIndexes(db weave.ReadOnlyKVStore, c *Choice, owner weave.Address) ([]uint64, error) {
	positions, err := l.holderPositions(db, c, owner)
	if err != nil {
		return nil, err
	}
	var indexes []uint64
	for _, p := range positions {
		if p.Active() {
			indexes = append(indexes, p.Index)
		}
	}
	return indexes, nil
}

// liveIndexes returns the indexes of all positions of the owner that are not
// tombstoned.
func (l *ledger) liveIndexes(db weave.ReadOnlyKVStore, c *Choice, owner weave.Address) ([]uint64, error) {
	positions, err := l.holderPositions(db, c, owner)
	if err != nil {
		return nil, err
	}
	var indexes []uint64
	for _, p := range positions {
		if !p.Tombstoned() {
			indexes = append(indexes, p.Index)
		}
	}
	return indexes, nil
}

// transferable returns the settled positions addressed by the indexes. The
// whole set is rejected if any of the indexes is invalid.
func (l *ledger) transferable(db weave.ReadOnlyKVStore, c *Choice, from, to weave.Address, indexes []uint64, rate uint32, cycle int64) ([]*Position, error) {
	if from.Equals(to) {
		return nil, errors.Wrap(errors.ErrInput, "cannot transfer to the owner")
	}
	if len(indexes) == 0 {
		return nil, errors.Wrap(ErrPositionNotFound, "no positions to transfer")
	}
	seen := make(map[uint64]struct{}, len(indexes))
	positions := make([]*Position, 0, len(indexes))
	for _, index := range indexes {
		if _, ok := seen[index]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicate, "position %d", index)
		}
		seen[index] = struct{}{}
		p, err := l.position(db, c, from, index, rate, cycle)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// transfer moves the positions with their tokens and shares to the
// recipient. Moved positions are appended to the recipient list and
// tombstoned in the owner list. Totals of the choice are not changed.
func (l *ledger) transfer(db weave.KVStore, c *Choice, from, to weave.Address, indexes []uint64, rate uint32, cycle int64) error {
	positions, err := l.transferable(db, c, from, to, indexes, rate, cycle)
	if err != nil {
		return err
	}
	next, err := l.positionsLength(db, c, to)
	if err != nil {
		return err
	}
	for _, p := range positions {
		moved := Position{
			Metadata:       &weave.Metadata{Schema: 1},
			TopicID:        c.TopicID,
			ChoiceID:       c.ID,
			Owner:          to,
			Index:          next,
			CreatedAtCycle: p.CreatedAtCycle,
			SettledCycle:   p.SettledCycle,
			Tokens:         p.Tokens,
			Shares:         p.Shares,
		}
		if _, err := l.positions.Put(db, PositionKey(c.TopicID, c.ID, to, next), &moved); err != nil {
			return errors.Wrapf(err, "store position %d of recipient", next)
		}
		next++

		p.Tokens = zero(p.Tokens.Ticker)
		p.Shares = zero(p.Shares.Ticker)
		if _, err := l.positions.Put(db, PositionKey(c.TopicID, c.ID, from, p.Index), p); err != nil {
			return errors.Wrapf(err, "store position %d of owner", p.Index)
		}
	}
	return nil
}
