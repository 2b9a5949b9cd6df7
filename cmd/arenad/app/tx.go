package app

import (
	"github.com/iov-one/arena/x/allowance"
	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (weave.Msg, error) {
	switch t := tx.GetSum().(type) {
	case nil:
		return nil, errors.Wrap(errors.ErrInput, "unable to decode")
	case *Tx_CashSendMsg:
		return t.CashSendMsg, nil
	case *Tx_AllowanceApproveMsg:
		return t.AllowanceApproveMsg, nil
	case *Tx_ArenaCreateTopicMsg:
		return t.ArenaCreateTopicMsg, nil
	case *Tx_ArenaCreateChoiceMsg:
		return t.ArenaCreateChoiceMsg, nil
	case *Tx_ArenaContributeMsg:
		return t.ArenaContributeMsg, nil
	case *Tx_ArenaWithdrawMsg:
		return t.ArenaWithdrawMsg, nil
	case *Tx_ArenaWithdrawAllMsg:
		return t.ArenaWithdrawAllMsg, nil
	case *Tx_ArenaTransferPositionMsg:
		return t.ArenaTransferPositionMsg, nil
	case *Tx_ArenaTransferPositionsMsg:
		return t.ArenaTransferPositionsMsg, nil
	case *Tx_ArenaTransferAllPositionsMsg:
		return t.ArenaTransferAllPositionsMsg, nil
	case *Tx_ArenaRemoveTopicMsg:
		return t.ArenaRemoveTopicMsg, nil
	case *Tx_ArenaRemoveChoiceMsg:
		return t.ArenaRemoveChoiceMsg, nil
	case *Tx_MigrationUpgradeSchemaMsg:
		return t.MigrationUpgradeSchemaMsg, nil
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown message %T", t)
	}
}

// SetMsg wraps given message in the transaction sum. Only messages that the
// application routes are accepted.
func (tx *Tx) SetMsg(msg weave.Msg) error {
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.Sum = &Tx_CashSendMsg{CashSendMsg: m}
	case *allowance.ApproveMsg:
		tx.Sum = &Tx_AllowanceApproveMsg{AllowanceApproveMsg: m}
	case *arena.CreateTopicMsg:
		tx.Sum = &Tx_ArenaCreateTopicMsg{ArenaCreateTopicMsg: m}
	case *arena.CreateChoiceMsg:
		tx.Sum = &Tx_ArenaCreateChoiceMsg{ArenaCreateChoiceMsg: m}
	case *arena.ContributeMsg:
		tx.Sum = &Tx_ArenaContributeMsg{ArenaContributeMsg: m}
	case *arena.WithdrawMsg:
		tx.Sum = &Tx_ArenaWithdrawMsg{ArenaWithdrawMsg: m}
	case *arena.WithdrawAllMsg:
		tx.Sum = &Tx_ArenaWithdrawAllMsg{ArenaWithdrawAllMsg: m}
	case *arena.TransferPositionMsg:
		tx.Sum = &Tx_ArenaTransferPositionMsg{ArenaTransferPositionMsg: m}
	case *arena.TransferPositionsMsg:
		tx.Sum = &Tx_ArenaTransferPositionsMsg{ArenaTransferPositionsMsg: m}
	case *arena.TransferAllPositionsMsg:
		tx.Sum = &Tx_ArenaTransferAllPositionsMsg{ArenaTransferAllPositionsMsg: m}
	case *arena.RemoveTopicMsg:
		tx.Sum = &Tx_ArenaRemoveTopicMsg{ArenaRemoveTopicMsg: m}
	case *arena.RemoveChoiceMsg:
		tx.Sum = &Tx_ArenaRemoveChoiceMsg{ArenaRemoveChoiceMsg: m}
	case *migration.UpgradeSchemaMsg:
		tx.Sum = &Tx_MigrationUpgradeSchemaMsg{MigrationUpgradeSchemaMsg: m}
	default:
		return errors.Wrapf(errors.ErrType, "message %T cannot be wrapped in a transaction", msg)
	}
	return nil
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
