package arena

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Topic{}, migration.NoModification)
	migration.MustRegister(1, &Choice{}, migration.NoModification)
	migration.MustRegister(1, &Position{}, migration.NoModification)
}

var _ orm.Model = (*Topic)(nil)

func (m *Topic) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Creator", m.Creator.Validate())
	errs = errors.AppendField(errs, "Funds", m.Funds.Validate())
	if m.CycleLength <= 0 {
		errs = errors.AppendField(errs, "CycleLength", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	if m.CreatedAt < 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	if m.FundingPeriod < 0 {
		errs = errors.AppendField(errs, "FundingPeriod", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	errs = errors.AppendField(errs, "TopicFee", validateRate(m.TopicFee))
	errs = errors.AppendField(errs, "MaxChoiceFee", validateRate(m.MaxChoiceFee))
	errs = errors.AppendField(errs, "ContributorFee", validateRate(m.ContributorFee))
	errs = errors.AppendField(errs, "RelativeSupportThreshold", validateRate(m.RelativeSupportThreshold))
	errs = errors.AppendField(errs, "FundingPercentage", validateRate(m.FundingPercentage))
	errs = errors.AppendField(errs, "AccrualRate", validateAccrualRate(m.AccrualRate))
	return errs
}

// CurrentCycle returns the index of the accrual cycle of the topic at given
// block height.
func (m *Topic) CurrentCycle(height int64) int64 {
	if m.CycleLength <= 0 || height <= m.CreatedAt {
		return 0
	}
	return (height - m.CreatedAt) / m.CycleLength
}

func NewTopicBucket() orm.ModelBucket {
	b := orm.NewModelBucket("topic", &Topic{})
	return migration.NewModelBucket("arena", b)
}

// topicCountKey holds the number of created topics, which is also the ID of
// the next topic.
var topicCountKey = []byte("_arena.topic:count")

func topicCount(db weave.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(topicCountKey)
	if err != nil {
		return 0, errors.Wrap(err, "topic counter")
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "invalid topic counter length %d", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// acquireTopicID returns the ID of a new topic and advances the counter.
func acquireTopicID(db weave.KVStore) (uint64, error) {
	id, err := topicCount(db)
	if err != nil {
		return 0, err
	}
	if err := db.Set(topicCountKey, encodeID(id+1)); err != nil {
		return 0, errors.Wrap(err, "store topic counter")
	}
	return id, nil
}

var _ orm.Model = (*Choice)(nil)

func (m *Choice) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Creator", m.Creator.Validate())
	errs = errors.AppendField(errs, "Funds", m.Funds.Validate())
	errs = errors.AppendField(errs, "Fee", validateRate(m.Fee))
	if len(m.Description) > maxDescriptionLength {
		errs = errors.AppendField(errs, "Description", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxDescriptionLength))
	}
	if !m.FundingTarget.IsNonNegative() {
		errs = errors.AppendField(errs, "FundingTarget", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if !m.TotalTokens.IsNonNegative() {
		errs = errors.AppendField(errs, "TotalTokens", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if !m.TotalShares.IsNonNegative() {
		errs = errors.AppendField(errs, "TotalShares", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if !m.ClaimableShares.IsNonNegative() {
		errs = errors.AppendField(errs, "ClaimableShares", errors.Wrap(errors.ErrAmount, "must not be negative"))
	} else if m.ClaimableShares.Compare(m.TotalShares) > 0 {
		errs = errors.AppendField(errs, "ClaimableShares", errors.Wrap(errors.ErrState, "greater than total shares"))
	}
	if !m.ContributorPool.IsNonNegative() {
		errs = errors.AppendField(errs, "ContributorPool", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if m.SettledCycle < 0 {
		errs = errors.AppendField(errs, "SettledCycle", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	return errs
}

const maxDescriptionLength = 1024

func NewChoiceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("choice", &Choice{},
		orm.WithNativeIndex("topic", choiceTopic),
	)
	return migration.NewModelBucket("arena", b)
}

func choiceTopic(o orm.Object) ([][]byte, error) {
	c, ok := o.Value().(*Choice)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Choice")
	}
	return [][]byte{TopicKey(c.TopicID)}, nil
}

var _ orm.Model = (*Position)(nil)

func (m *Position) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if !m.Tokens.IsNonNegative() {
		errs = errors.AppendField(errs, "Tokens", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if !m.Shares.IsNonNegative() {
		errs = errors.AppendField(errs, "Shares", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if m.CreatedAtCycle < 0 {
		errs = errors.AppendField(errs, "CreatedAtCycle", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	if m.SettledCycle < m.CreatedAtCycle {
		errs = errors.AppendField(errs, "SettledCycle", errors.Wrap(errors.ErrState, "before creation cycle"))
	}
	return errs
}

// Tombstoned returns true if the position holds neither tokens nor shares.
// Such position is kept in the store only to preserve the indexes of the
// positions created after it.
func (m *Position) Tombstoned() bool {
	return m.Tokens.IsZero() && m.Shares.IsZero()
}

// Active returns true if the position still holds tokens.
func (m *Position) Active() bool {
	return m.Tokens.IsPositive()
}

func NewPositionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("position", &Position{},
		orm.WithNativeIndex("holder", positionHolder),
		orm.WithNativeIndex("owner", positionOwner),
	)
	return migration.NewModelBucket("arena", b)
}

func positionHolder(o orm.Object) ([][]byte, error) {
	p, ok := o.Value().(*Position)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Position")
	}
	return [][]byte{HolderKey(p.TopicID, p.ChoiceID, p.Owner)}, nil
}

func positionOwner(o orm.Object) ([][]byte, error) {
	p, ok := o.Value().(*Position)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Position")
	}
	return [][]byte{p.Owner}, nil
}

func validateAccrualRate(rate uint32) error {
	if rate == 0 {
		return errors.Wrap(errors.ErrInput, "must be greater than zero")
	}
	return validateRate(rate)
}

func validateRate(rate uint32) error {
	if rate > MaxRate {
		return errors.Wrapf(ErrInvalidRate, "%d is more than %d", rate, MaxRate)
	}
	return nil
}

func encodeID(id uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)
	return b
}

// TopicKey returns the bucket key of a topic.
func TopicKey(topicID uint64) []byte {
	return encodeID(topicID)
}

// ChoiceKey returns the bucket key of a choice.
func ChoiceKey(topicID, choiceID uint64) []byte {
	return append(encodeID(topicID), encodeID(choiceID)...)
}

// HolderKey identifies the list of positions of a single account on a single
// choice.
func HolderKey(topicID, choiceID uint64, owner weave.Address) []byte {
	return append(ChoiceKey(topicID, choiceID), owner...)
}

func PositionKey(topicID, choiceID uint64, owner weave.Address, index uint64) []byte {
	return append(HolderKey(topicID, choiceID, owner), encodeID(index)...)
}

// ParsePositionKey is the reverse of PositionKey.
func ParsePositionKey(key []byte) (topicID, choiceID uint64, owner weave.Address, index uint64, err error) {
	if len(key) != 24+weave.AddressLength {
		return 0, 0, nil, 0, errors.Wrapf(errors.ErrInput, "invalid position key length %d", len(key))
	}
	topicID = binary.BigEndian.Uint64(key[:8])
	choiceID = binary.BigEndian.Uint64(key[8:16])
	owner = weave.Address(key[16 : 16+weave.AddressLength])
	index = binary.BigEndian.Uint64(key[16+weave.AddressLength:])
	return topicID, choiceID, owner, index, nil
}

// ChoiceAccount returns the address holding the funds locked in the
// positions of a choice.
func ChoiceAccount(topicID, choiceID uint64) weave.Address {
	return weave.NewCondition("arena", "choice", ChoiceKey(topicID, choiceID)).Address()
}
