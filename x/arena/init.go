package arena

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load the arena
// configuration and the initial topics from the genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis stores the arena configuration. Topics declared in the
// genesis are created at height zero and do not pay the creation fee.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "arena", &conf); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var topics []struct {
		Creator                  weave.Address `json:"creator"`
		CycleLength              int64         `json:"cycle_length"`
		TopicFee                 uint32        `json:"topic_fee"`
		MaxChoiceFee             uint32        `json:"max_choice_fee"`
		ContributorFee           uint32        `json:"contributor_fee"`
		RelativeSupportThreshold uint32        `json:"relative_support_threshold"`
		FundingPeriod            int64         `json:"funding_period"`
		FundingPercentage        uint32        `json:"funding_percentage"`
		Funds                    weave.Address `json:"funds"`
		AccrualRate              uint32        `json:"accrual_rate"`
	}
	if err := opts.ReadOptions("topics", &topics); err != nil {
		return err
	}
	b := NewTopicBucket()
	for i, t := range topics {
		msg := CreateTopicMsg{
			Metadata:                 &weave.Metadata{Schema: 1},
			Creator:                  t.Creator,
			CycleLength:              t.CycleLength,
			TopicFee:                 t.TopicFee,
			MaxChoiceFee:             t.MaxChoiceFee,
			ContributorFee:           t.ContributorFee,
			RelativeSupportThreshold: t.RelativeSupportThreshold,
			FundingPeriod:            t.FundingPeriod,
			FundingPercentage:        t.FundingPercentage,
			Funds:                    t.Funds,
			AccrualRate:              t.AccrualRate,
		}
		if err := msg.Validate(); err != nil {
			return errors.Wrapf(err, "topic %d is invalid", i)
		}
		if err := ValidateTopicRates(&conf, &msg); err != nil {
			return errors.Wrapf(err, "topic %d rates", i)
		}
		id, err := acquireTopicID(db)
		if err != nil {
			return errors.Wrap(err, "cannot acquire topic id")
		}
		topic := Topic{
			Metadata:                 &weave.Metadata{Schema: 1},
			ID:                       id,
			Creator:                  msg.Creator,
			CycleLength:              msg.CycleLength,
			TopicFee:                 msg.TopicFee,
			MaxChoiceFee:             msg.MaxChoiceFee,
			ContributorFee:           msg.ContributorFee,
			RelativeSupportThreshold: msg.RelativeSupportThreshold,
			FundingPeriod:            msg.FundingPeriod,
			FundingPercentage:        msg.FundingPercentage,
			Funds:                    msg.Funds,
			AccrualRate:              msg.AccrualRate,
		}
		if _, err := b.Put(db, TopicKey(topic.ID), &topic); err != nil {
			return errors.Wrapf(err, "store topic %d", i)
		}
	}
	return nil
}
