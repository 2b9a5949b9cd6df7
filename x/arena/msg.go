package arena

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateTopicMsg{}, migration.NoModification)
	migration.MustRegister(1, &CreateChoiceMsg{}, migration.NoModification)
	migration.MustRegister(1, &ContributeMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawAllMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferPositionMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferPositionsMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferAllPositionsMsg{}, migration.NoModification)
	migration.MustRegister(1, &RemoveTopicMsg{}, migration.NoModification)
	migration.MustRegister(1, &RemoveChoiceMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateTopicMsg)(nil)

func (CreateTopicMsg) Path() string {
	return "arena/create_topic"
}

func (m *CreateTopicMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Creator", m.Creator.Validate())
	errs = errors.AppendField(errs, "Funds", m.Funds.Validate())
	if m.CycleLength <= 0 {
		errs = errors.AppendField(errs, "CycleLength", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	if m.FundingPeriod < 0 {
		errs = errors.AppendField(errs, "FundingPeriod", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	errs = errors.AppendField(errs, "RelativeSupportThreshold", validateRate(m.RelativeSupportThreshold))
	errs = errors.AppendField(errs, "AccrualRate", validateAccrualRate(m.AccrualRate))
	return errs
}

var _ weave.Msg = (*CreateChoiceMsg)(nil)

func (CreateChoiceMsg) Path() string {
	return "arena/create_choice"
}

func (m *CreateChoiceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Creator", m.Creator.Validate())
	errs = errors.AppendField(errs, "Funds", m.Funds.Validate())
	if len(m.Description) > maxDescriptionLength {
		errs = errors.AppendField(errs, "Description", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxDescriptionLength))
	}
	if !m.FundingTarget.IsZero() || m.FundingTarget.Ticker != "" {
		if err := m.FundingTarget.Validate(); err != nil {
			errs = errors.AppendField(errs, "FundingTarget", err)
		} else if !m.FundingTarget.IsNonNegative() {
			errs = errors.AppendField(errs, "FundingTarget", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	return errs
}

var _ weave.Msg = (*ContributeMsg)(nil)

func (ContributeMsg) Path() string {
	return "arena/contribute"
}

func (m *ContributeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Contributor", m.Contributor.Validate())
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ weave.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "arena/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

var _ weave.Msg = (*WithdrawAllMsg)(nil)

func (WithdrawAllMsg) Path() string {
	return "arena/withdraw_all"
}

func (m *WithdrawAllMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

var _ weave.Msg = (*TransferPositionMsg)(nil)

func (TransferPositionMsg) Path() string {
	return "arena/transfer_position"
}

func (m *TransferPositionMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Recipient", validateRecipient(m.Owner, m.Recipient))
	return errs
}

var _ weave.Msg = (*TransferPositionsMsg)(nil)

func (TransferPositionsMsg) Path() string {
	return "arena/transfer_positions"
}

func (m *TransferPositionsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Recipient", validateRecipient(m.Owner, m.Recipient))
	if len(m.Indexes) == 0 {
		errs = errors.AppendField(errs, "Indexes", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*TransferAllPositionsMsg)(nil)

func (TransferAllPositionsMsg) Path() string {
	return "arena/transfer_all_positions"
}

func (m *TransferAllPositionsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Recipient", validateRecipient(m.Owner, m.Recipient))
	return errs
}

func validateRecipient(owner, recipient weave.Address) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	if owner.Equals(recipient) {
		return errors.Wrap(errors.ErrInput, "cannot transfer to the owner")
	}
	return nil
}

var _ weave.Msg = (*RemoveTopicMsg)(nil)

func (RemoveTopicMsg) Path() string {
	return "arena/remove_topic"
}

func (m *RemoveTopicMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

var _ weave.Msg = (*RemoveChoiceMsg)(nil)

func (RemoveChoiceMsg) Path() string {
	return "arena/remove_choice"
}

func (m *RemoveChoiceMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}
