package arena

import (
	"math/big"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// MaxRate is the rate of 100% expressed in basis points.
const MaxRate = 10000

var maxRate = big.NewInt(MaxRate)

// FeeRates are the cuts taken from every contribution to a choice, in basis
// points.
type FeeRates struct {
	Arena       uint32
	Topic       uint32
	Contributor uint32
	Choice      uint32
}

// Validate returns an error if the rates together take more than the whole
// contribution.
func (r FeeRates) Validate() error {
	if total := r.total(); total > MaxRate {
		return errors.Wrapf(ErrInvalidRate, "fee rates sum up to %d", total)
	}
	return nil
}

func (r FeeRates) total() uint64 {
	return uint64(r.Arena) + uint64(r.Topic) + uint64(r.Contributor) + uint64(r.Choice)
}

// Waterfall is the result of splitting a contribution.
type Waterfall struct {
	ArenaCut       coin.Coin
	TopicCut       coin.Coin
	ContributorCut coin.Coin
	ChoiceCut      coin.Coin
	// Net is credited to the contributor position. It also collects the
	// rounding leftover of all cuts.
	Net coin.Coin
}

// Split divides the amount between the fee destinations and the
// contributor. Every cut is computed independently from the full amount and
// rounded down.
func Split(amount coin.Coin, rates FeeRates) (Waterfall, error) {
	if err := rates.Validate(); err != nil {
		return Waterfall{}, err
	}
	if err := amount.Validate(); err != nil {
		return Waterfall{}, errors.Wrap(err, "amount")
	}
	if !amount.IsNonNegative() {
		return Waterfall{}, errors.Wrap(errors.ErrAmount, "negative amount")
	}

	cut := func(rate uint32) (coin.Coin, error) {
		return mulDiv(amount, big.NewInt(int64(rate)), maxRate)
	}
	var (
		w   Waterfall
		err error
	)
	if w.ArenaCut, err = cut(rates.Arena); err != nil {
		return Waterfall{}, errors.Wrap(err, "arena cut")
	}
	if w.TopicCut, err = cut(rates.Topic); err != nil {
		return Waterfall{}, errors.Wrap(err, "topic cut")
	}
	if w.ContributorCut, err = cut(rates.Contributor); err != nil {
		return Waterfall{}, errors.Wrap(err, "contributor cut")
	}
	if w.ChoiceCut, err = cut(rates.Choice); err != nil {
		return Waterfall{}, errors.Wrap(err, "choice cut")
	}
	fees, err := addCoins(w.ArenaCut, w.TopicCut, w.ContributorCut, w.ChoiceCut)
	if err != nil {
		return Waterfall{}, errors.Wrap(err, "fees")
	}
	if w.Net, err = amount.Subtract(fees); err != nil {
		return Waterfall{}, errors.Wrap(err, "net")
	}
	return w, nil
}

// FoldContributorCut returns the waterfall with the contributor cut credited
// to the net amount. It is used when there is nobody to pay the contributor
// cut to.
func (w Waterfall) FoldContributorCut() (Waterfall, error) {
	net, err := w.Net.Add(w.ContributorCut)
	if err != nil {
		return w, errors.Wrap(err, "net")
	}
	w.Net = net
	w.ContributorCut = zero(w.Net.Ticker)
	return w, nil
}

// ValidateTopicRates checks the rates of a new topic against the arena
// bounds. Checks are done in order and the first failure is returned.
func ValidateTopicRates(conf *Configuration, msg *CreateTopicMsg) error {
	if msg.TopicFee > conf.MaxTopicFee {
		return errors.Wrapf(ErrTopicFeeExceeded, "%d > %d", msg.TopicFee, conf.MaxTopicFee)
	}
	if msg.MaxChoiceFee > conf.MaxChoiceFee {
		return errors.Wrapf(ErrChoiceFeeExceeded, "%d > %d", msg.MaxChoiceFee, conf.MaxChoiceFee)
	}
	if msg.FundingPercentage > MaxRate {
		return errors.Wrapf(ErrFundingFeeExceeded, "%d > %d", msg.FundingPercentage, MaxRate)
	}
	rates := FeeRates{
		Arena:       conf.ArenaFee,
		Topic:       msg.TopicFee,
		Contributor: msg.ContributorFee,
	}
	if total := rates.total(); total > MaxRate {
		return errors.Wrapf(ErrAccumulativeFeeExceeded, "topic fees sum up to %d", total)
	}
	return nil
}

// ValidateChoiceRates checks the fee of a new choice against the bounds of
// its topic and the arena.
func ValidateChoiceRates(conf *Configuration, topic *Topic, fee uint32) error {
	if fee > topic.MaxChoiceFee {
		return errors.Wrapf(ErrHighFeePercentage, "%d > %d", fee, topic.MaxChoiceFee)
	}
	rates := contributionRates(conf, topic, fee)
	if total := rates.total(); total > MaxRate {
		return errors.Wrapf(ErrAccumulativeFeeExceeded, "choice fees sum up to %d", total)
	}
	return nil
}

func contributionRates(conf *Configuration, topic *Topic, choiceFee uint32) FeeRates {
	return FeeRates{
		Arena:       conf.ArenaFee,
		Topic:       topic.TopicFee,
		Contributor: topic.ContributorFee,
		Choice:      choiceFee,
	}
}
