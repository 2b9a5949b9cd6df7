package arena

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Querier provides read access to the arena state. Ledger values are settled
// to the cycle of the given block height before they are returned. Nothing
// is written to the store.
type Querier struct {
	topics  orm.ModelBucket
	choices orm.ModelBucket
	ledger  *ledger
}

func NewQuerier() *Querier {
	return &Querier{
		topics:  NewTopicBucket(),
		choices: NewChoiceBucket(),
		ledger:  newLedger(),
	}
}

// Info returns the arena configuration.
func (q *Querier) Info(db weave.ReadOnlyKVStore) (*Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return &conf, nil
}

func (q *Querier) Topic(db weave.ReadOnlyKVStore, topicID uint64) (*Topic, error) {
	return loadTopic(db, q.topics, topicID)
}

// Choice returns the choice with its aggregates settled at given height.
func (q *Querier) Choice(db weave.ReadOnlyKVStore, topicID, choiceID uint64, height int64) (*Choice, error) {
	return q.settled(db, topicID, choiceID, height)
}

// ChoiceTotals returns the amount of tokens locked in a choice and the
// amount of shares they accrued.
func (q *Querier) ChoiceTotals(db weave.ReadOnlyKVStore, topicID, choiceID uint64, height int64) (tokens, shares coin.Coin, err error) {
	choice, err := q.settled(db, topicID, choiceID, height)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, err
	}
	return choice.TotalTokens, choice.TotalShares, nil
}

// PositionOf returns a single position of the owner. Tombstoned positions
// are reported as ErrPositionNotFound.
func (q *Querier) PositionOf(db weave.ReadOnlyKVStore, topicID, choiceID uint64, owner weave.Address, index uint64, height int64) (*Position, error) {
	topic, choice, cycle, err := settleAt(db, q.topics, q.choices, topicID, choiceID, height)
	if err != nil {
		return nil, err
	}
	return q.ledger.position(db, choice, owner, index, topic.AccrualRate, cycle)
}

// PositionsLength returns the number of position slots of the owner on a
// choice. Tombstoned slots are counted.
func (q *Querier) PositionsLength(db weave.ReadOnlyKVStore, topicID, choiceID uint64, owner weave.Address) (uint64, error) {
	choice, err := loadChoice(db, q.choices, topicID, choiceID)
	if err != nil {
		return 0, err
	}
	return q.ledger.positionsLength(db, choice, owner)
}

// Positions returns all positions of the owner across all choices, settled
// at given height. Tombstoned positions are omitted.
func (q *Querier) Positions(db weave.ReadOnlyKVStore, owner weave.Address, height int64) ([]*Position, error) {
	var positions []*Position
	switch _, err := q.ledger.positions.ByIndex(db, "owner", owner, &positions); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "owner positions")
	}

	topics := make(map[uint64]*Topic)
	res := make([]*Position, 0, len(positions))
	for _, p := range positions {
		if p.Tombstoned() {
			continue
		}
		topic, ok := topics[p.TopicID]
		if !ok {
			var err error
			if topic, err = loadTopic(db, q.topics, p.TopicID); err != nil {
				return nil, err
			}
			topics[p.TopicID] = topic
		}
		SettlePosition(p, topic.AccrualRate, topic.CurrentCycle(height))
		res = append(res, p)
	}
	return res, nil
}

// NextTopicID returns the identifier that the next created topic gets.
func (q *Querier) NextTopicID(db weave.ReadOnlyKVStore) (uint64, error) {
	return topicCount(db)
}

// NextChoiceID returns the identifier that the next choice created within
// given topic gets.
func (q *Querier) NextChoiceID(db weave.ReadOnlyKVStore, topicID uint64) (uint64, error) {
	topic, err := loadTopic(db, q.topics, topicID)
	if err != nil {
		return 0, err
	}
	return topic.ChoiceCount, nil
}

func (q *Querier) IsTopicDeleted(db weave.ReadOnlyKVStore, topicID uint64) (bool, error) {
	topic, err := loadTopic(db, q.topics, topicID)
	if err != nil {
		return false, err
	}
	return topic.Deleted, nil
}

// IsChoiceDeleted returns the deleted flag of the choice itself. A choice of
// a deleted topic is not reported as deleted.
func (q *Querier) IsChoiceDeleted(db weave.ReadOnlyKVStore, topicID, choiceID uint64) (bool, error) {
	choice, err := loadChoice(db, q.choices, topicID, choiceID)
	if err != nil {
		return false, err
	}
	return choice.Deleted, nil
}

func (q *Querier) settled(db weave.ReadOnlyKVStore, topicID, choiceID uint64, height int64) (*Choice, error) {
	_, choice, _, err := settleAt(db, q.topics, q.choices, topicID, choiceID, height)
	return choice, err
}

// confQueryHandler returns the arena configuration as a single model keyed
// by the package name.
type confQueryHandler struct{}

func (confQueryHandler) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	if mod != weave.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mode %q", mod)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	raw, err := conf.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal configuration")
	}
	return []weave.Model{weave.Pair([]byte("arena"), raw)}, nil
}
