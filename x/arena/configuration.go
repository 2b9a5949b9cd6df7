package arena

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if len(c.Name) == 0 {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if !coin.IsCC(c.Token) {
		errs = errors.AppendField(errs, "Token", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Token))
	}
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	errs = errors.AppendField(errs, "Funds", c.Funds.Validate())
	errs = errors.AppendField(errs, "MinContribution", validateFee(c.MinContribution, c.Token))
	errs = errors.AppendField(errs, "ArenaFee", validateRate(c.ArenaFee))
	errs = errors.AppendField(errs, "MaxTopicFee", validateRate(c.MaxTopicFee))
	errs = errors.AppendField(errs, "MaxChoiceFee", validateRate(c.MaxChoiceFee))
	errs = errors.AppendField(errs, "TopicCreationFee", validateFee(c.TopicCreationFee, c.Token))
	errs = errors.AppendField(errs, "ChoiceCreationFee", validateFee(c.ChoiceCreationFee, c.Token))
	return errs
}

// validateFee returns an error if given value is not a non negative amount
// of the arena token. A zero value with no ticker is accepted.
func validateFee(c coin.Coin, token string) error {
	if c.IsZero() && c.Ticker == "" {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Ticker != token {
		return errors.Wrapf(errors.ErrCurrency, "%s is not the arena token", c.Ticker)
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "must not be negative")
	}
	return nil
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "arena", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// SpenderAddress is the address that the arena uses to move funds out of
// contributor and creator accounts. Accounts must approve an allowance for
// this address before paying creation fees or contributing.
func SpenderAddress() weave.Address {
	return weave.NewCondition("arena", "spender", []byte("arena")).Address()
}
