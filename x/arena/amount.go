package arena

import (
	"math/big"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

var fracUnit = big.NewInt(coin.FracUnit)

// atomic returns the value of a coin expressed in its smallest unit.
func atomic(c coin.Coin) *big.Int {
	n := big.NewInt(c.Whole)
	n.Mul(n, fracUnit)
	return n.Add(n, big.NewInt(c.Fractional))
}

// fromAtomic converts a value expressed in the smallest unit back into a
// coin. It fails if the value does not fit into a coin.
func fromAtomic(n *big.Int, ticker string) (coin.Coin, error) {
	var whole, frac big.Int
	whole.QuoRem(n, fracUnit, &frac)
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt || whole.Int64() < coin.MinInt {
		return coin.Coin{}, errors.Wrapf(errors.ErrOverflow, "%s does not fit into a coin", n)
	}
	return coin.NewCoin(whole.Int64(), frac.Int64(), ticker), nil
}

// mulDiv returns floor(c * num / den). Both num and den must be positive.
func mulDiv(c coin.Coin, num, den *big.Int) (coin.Coin, error) {
	n := atomic(c)
	n.Mul(n, num)
	n.Quo(n, den)
	return fromAtomic(n, c.Ticker)
}

// maxShares is the largest amount of shares a position or a choice can hold.
// Accrual stops growing the shares once it is reached.
var maxShares = atomic(coin.Coin{Whole: coin.MaxInt, Fractional: coin.MaxFrac})

// capShares converts an atomic value into shares, limited to maxShares.
func capShares(n *big.Int, ticker string) coin.Coin {
	if n.Cmp(maxShares) > 0 {
		n = maxShares
	}
	if n.Sign() < 0 {
		n = big.NewInt(0)
	}
	var whole, frac big.Int
	whole.QuoRem(n, fracUnit, &frac)
	return coin.NewCoin(whole.Int64(), frac.Int64(), ticker)
}

// addShares returns a + b, limited to maxShares.
func addShares(a, b coin.Coin) coin.Coin {
	n := atomic(a)
	return capShares(n.Add(n, atomic(b)), sharesTicker(a, b))
}

// subShares returns a - b, never less than zero.
func subShares(a, b coin.Coin) coin.Coin {
	n := atomic(a)
	return capShares(n.Sub(n, atomic(b)), sharesTicker(a, b))
}

func sharesTicker(a, b coin.Coin) string {
	if a.Ticker != "" {
		return a.Ticker
	}
	return b.Ticker
}

// addCoins returns the sum of given coins. Zero coins without a ticker are
// ignored.
func addCoins(cs ...coin.Coin) (coin.Coin, error) {
	var sum coin.Coin
	for _, c := range cs {
		var err error
		if sum, err = sum.Add(c); err != nil {
			return coin.Coin{}, err
		}
	}
	return sum, nil
}

// zero returns a zero value coin of given currency.
func zero(ticker string) coin.Coin {
	return coin.NewCoin(0, 0, ticker)
}
