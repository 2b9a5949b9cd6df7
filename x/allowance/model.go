package allowance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Allowance{}, migration.NoModification)
}

var _ orm.Model = (*Allowance)(nil)

func (m *Allowance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsNonNegative() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	return errs
}

// allowanceKey returns the key under which the allowance of the spender for
// the owner funds of given currency is stored.
func allowanceKey(owner, spender weave.Address, ticker string) []byte {
	key := make([]byte, 0, len(owner)+len(spender)+len(ticker)+2)
	key = append(key, owner...)
	key = append(key, ':')
	key = append(key, spender...)
	key = append(key, ':')
	return append(key, ticker...)
}

func NewAllowanceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("allowance", &Allowance{},
		orm.WithNativeIndex("owner", allowanceOwner),
		orm.WithNativeIndex("spender", allowanceSpender),
	)
	return migration.NewModelBucket("allowance", b)
}

func allowanceOwner(o orm.Object) ([][]byte, error) {
	a, ok := o.Value().(*Allowance)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not an Allowance")
	}
	return [][]byte{a.Owner}, nil
}

func allowanceSpender(o orm.Object) ([][]byte, error) {
	a, ok := o.Value().(*Allowance)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not an Allowance")
	}
	return [][]byte{a.Spender}, nil
}
