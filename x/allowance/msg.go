package allowance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &ApproveMsg{}, migration.NoModification)
}

var _ weave.Msg = (*ApproveMsg)(nil)

func (ApproveMsg) Path() string {
	return "allowance/approve"
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	if m.Owner.Equals(m.Spender) {
		errs = errors.AppendField(errs, "Spender", errors.Wrap(errors.ErrInput, "owner cannot approve itself"))
	}
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsNonNegative() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	return errs
}
