package arena

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesisAndQuerier(t *testing.T) {
	creator := weavetest.NewCondition().Address()
	alice := weavetest.NewCondition().Address()

	genesis := `{
		"conf": {
			"arena": {
				"metadata": {"schema": 1},
				"name": "attention",
				"token": "IOV",
				"admin": "` + weavetest.NewCondition().Address().String() + `",
				"funds": "` + weavetest.NewCondition().Address().String() + `",
				"arena_fee": 1000,
				"max_topic_fee": 2000,
				"max_choice_fee": 2000
			}
		},
		"topics": [
			{"creator": "` + creator.String() + `", "cycle_length": 10, "accrual_rate": 10000, "topic_fee": 500, "max_choice_fee": 1000, "funds": "` + creator.String() + `"},
			{"creator": "` + creator.String() + `", "cycle_length": 20, "accrual_rate": 2500, "funds": "` + creator.String() + `"}
		]
	}`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "arena")

	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %+v", err)
	}

	q := NewQuerier()

	conf, err := q.Info(db)
	assert.Nil(t, err)
	assert.Equal(t, "attention", conf.Name)

	models, err := confQueryHandler{}.Query(db, weave.KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	var queried Configuration
	assert.Nil(t, queried.Unmarshal(models[0].Value))
	assert.Equal(t, conf.Admin, queried.Admin)
	_, err = confQueryHandler{}.Query(db, "prefix", nil)
	assert.IsErr(t, errors.ErrInput, err)

	topic, err := q.Topic(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, int64(20), topic.CycleLength)
	assert.Equal(t, int64(0), topic.CreatedAt)
	assert.Equal(t, uint32(2500), topic.AccrualRate)

	next, err := q.NextTopicID(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), next)

	_, err = q.Topic(db, 2)
	assert.IsErr(t, errors.ErrNotFound, err)

	// A choice is stored directly so that the ledger can be queried
	// without going through the handlers.
	choice := Choice{
		Metadata:        &weave.Metadata{Schema: 1},
		TopicID:         0,
		ID:              0,
		Creator:         creator,
		Funds:           creator,
		TotalTokens:     coin.NewCoin(0, 0, "IOV"),
		TotalShares:     coin.NewCoin(0, 0, "IOV"),
		ClaimableShares: coin.NewCoin(0, 0, "IOV"),
		ContributorPool: coin.NewCoin(0, 0, "IOV"),
	}
	topic, err = q.Topic(db, 0)
	assert.Nil(t, err)
	topic.ChoiceCount = 1
	_, err = NewTopicBucket().Put(db, TopicKey(0), topic)
	assert.Nil(t, err)

	_, _, err = q.ledger.contribute(db, &choice, alice, coin.NewCoin(3, 0, "IOV"), 0)
	assert.Nil(t, err)
	_, err = NewChoiceBucket().Put(db, ChoiceKey(0, 0), &choice)
	assert.Nil(t, err)

	nextChoice, err := q.NextChoiceID(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), nextChoice)

	// Three cycles of ten blocks passed at height 35.
	tokens, shares, err := q.ChoiceTotals(db, 0, 0, 35)
	assert.Nil(t, err)
	assert.Equal(t, true, tokens.Equals(coin.NewCoin(3, 0, "IOV")))
	assert.Equal(t, true, shares.Equals(coin.NewCoin(9, 0, "IOV")))

	p, err := q.PositionOf(db, 0, 0, alice, 0, 35)
	assert.Nil(t, err)
	assert.Equal(t, true, p.Shares.Equals(coin.NewCoin(9, 0, "IOV")))

	_, err = q.PositionOf(db, 0, 0, alice, 1, 35)
	assert.IsErr(t, ErrPositionNotFound, err)

	n, err := q.PositionsLength(db, 0, 0, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), n)

	all, err := q.Positions(db, alice, 50)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(all))
	assert.Equal(t, true, all[0].Shares.Equals(coin.NewCoin(15, 0, "IOV")))

	none, err := q.Positions(db, creator, 50)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(none))

	// Queries never write the settled state.
	stored, err := loadChoice(db, NewChoiceBucket(), 0, 0)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), stored.SettledCycle)

	deleted, err := q.IsTopicDeleted(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, false, deleted)
	deleted, err = q.IsChoiceDeleted(db, 0, 0)
	assert.Nil(t, err)
	assert.Equal(t, false, deleted)
}

func TestGenesisRejectsExcessiveRates(t *testing.T) {
	creator := weavetest.NewCondition().Address().String()
	genesis := `{
		"conf": {
			"arena": {
				"metadata": {"schema": 1},
				"name": "attention",
				"token": "IOV",
				"admin": "` + creator + `",
				"funds": "` + creator + `",
				"max_topic_fee": 1000
			}
		},
		"topics": [
			{"creator": "` + creator + `", "cycle_length": 10, "accrual_rate": 10000, "topic_fee": 1001, "funds": "` + creator + `"}
		]
	}`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "arena")

	var ini Initializer
	err := ini.FromGenesis(opts, weave.GenesisParams{}, db)
	assert.IsErr(t, ErrTopicFeeExceeded, err)
}
