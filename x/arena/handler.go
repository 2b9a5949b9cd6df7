package arena

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewTopicBucket().Register("topics", qr)
	NewChoiceBucket().Register("choices", qr)
	NewPositionBucket().Register("positions", qr)
	qr.Register("/arena/conf", confQueryHandler{})
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, capital CapitalLedger) {
	r = migration.SchemaMigratingRegistry("arena", r)

	topics := NewTopicBucket()
	choices := NewChoiceBucket()
	ledger := newLedger()

	r.Handle(&CreateTopicMsg{}, &createTopicHandler{
		auth:    auth,
		topics:  topics,
		capital: capital,
	})
	r.Handle(&CreateChoiceMsg{}, &createChoiceHandler{
		auth:    auth,
		topics:  topics,
		choices: choices,
		capital: capital,
	})
	r.Handle(&ContributeMsg{}, &contributeHandler{
		auth:    auth,
		topics:  topics,
		choices: choices,
		ledger:  ledger,
		capital: capital,
	})
	withdraw := &withdrawHandler{
		auth:    auth,
		topics:  topics,
		choices: choices,
		ledger:  ledger,
		capital: capital,
	}
	r.Handle(&WithdrawMsg{}, withdraw)
	r.Handle(&WithdrawAllMsg{}, withdraw)
	transfer := &transferHandler{
		auth:    auth,
		topics:  topics,
		choices: choices,
		ledger:  ledger,
	}
	r.Handle(&TransferPositionMsg{}, transfer)
	r.Handle(&TransferPositionsMsg{}, transfer)
	r.Handle(&TransferAllPositionsMsg{}, transfer)
	r.Handle(&RemoveTopicMsg{}, &removeTopicHandler{
		auth:   auth,
		topics: topics,
	})
	r.Handle(&RemoveChoiceMsg{}, &removeChoiceHandler{
		auth:    auth,
		topics:  topics,
		choices: choices,
	})
}

type createTopicHandler struct {
	auth    x.Authenticator
	topics  orm.ModelBucket
	capital CapitalLedger
}

func (h *createTopicHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createTopicHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}
	id, err := acquireTopicID(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire topic id")
	}
	topic := Topic{
		Metadata:                 &weave.Metadata{Schema: 1},
		ID:                       id,
		Creator:                  msg.Creator,
		CreatedAt:                height,
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
	key, err := h.topics.Put(db, TopicKey(topic.ID), &topic)
	if err != nil {
		return nil, errors.Wrap(err, "store topic")
	}
	if err := collectFee(db, h.capital, msg.Creator, conf.Funds, conf.TopicCreationFee); err != nil {
		return nil, errors.Wrap(err, "topic creation fee")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createTopicHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateTopicMsg, *Configuration, error) {
	var msg CreateTopicMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Creator) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator signature missing")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateTopicRates(&conf, &msg); err != nil {
		return nil, nil, err
	}
	if err := canCollectFee(db, h.capital, msg.Creator, conf.TopicCreationFee); err != nil {
		return nil, nil, errors.Wrap(err, "topic creation fee")
	}
	return &msg, &conf, nil
}

type createChoiceHandler struct {
	auth    x.Authenticator
	topics  orm.ModelBucket
	choices orm.ModelBucket
	capital CapitalLedger
}

func (h *createChoiceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createChoiceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, topic, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}
	choice := Choice{
		Metadata:        &weave.Metadata{Schema: 1},
		TopicID:         topic.ID,
		ID:              topic.ChoiceCount,
		Creator:         msg.Creator,
		Description:     msg.Description,
		Fee:             msg.Fee,
		FundingTarget:   msg.FundingTarget,
		Funds:           msg.Funds,
		TotalTokens:     zero(conf.Token),
		TotalShares:     zero(conf.Token),
		ClaimableShares: zero(conf.Token),
		ContributorPool: zero(conf.Token),
		SettledCycle:    topic.CurrentCycle(height),
	}
	key, err := h.choices.Put(db, ChoiceKey(choice.TopicID, choice.ID), &choice)
	if err != nil {
		return nil, errors.Wrap(err, "store choice")
	}
	topic.ChoiceCount++
	if _, err := h.topics.Put(db, TopicKey(topic.ID), topic); err != nil {
		return nil, errors.Wrap(err, "store topic")
	}
	if err := collectFee(db, h.capital, msg.Creator, msg.Funds, conf.ChoiceCreationFee); err != nil {
		return nil, errors.Wrap(err, "choice creation fee")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createChoiceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateChoiceMsg, *Topic, *Configuration, error) {
	var msg CreateChoiceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Creator) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator signature missing")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if !msg.FundingTarget.IsZero() && msg.FundingTarget.Ticker != conf.Token {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "funding target must be in %s", conf.Token)
	}
	topic, err := loadTopic(db, h.topics, msg.TopicID)
	if err != nil {
		return nil, nil, nil, err
	}
	if topic.Deleted {
		return nil, nil, nil, errors.Wrapf(ErrDeletedTopic, "topic %d", topic.ID)
	}
	if err := ValidateChoiceRates(&conf, topic, msg.Fee); err != nil {
		return nil, nil, nil, err
	}
	if err := canCollectFee(db, h.capital, msg.Creator, conf.ChoiceCreationFee); err != nil {
		return nil, nil, nil, errors.Wrap(err, "choice creation fee")
	}
	return &msg, topic, &conf, nil
}

type contributeHandler struct {
	auth    x.Authenticator
	topics  orm.ModelBucket
	choices orm.ModelBucket
	ledger  *ledger
	capital CapitalLedger
}

// contribution is a validated contribution, ready to be applied.
type contribution struct {
	msg    *ContributeMsg
	conf   *Configuration
	topic  *Topic
	choice *Choice
	split  Waterfall
	cycle  int64
}

func (h *contributeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *contributeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	c, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	choice := c.choice
	split := c.split
	// The cut is pooled only if some position already earned shares to
	// claim it with.
	if choice.ClaimableShares.IsPositive() {
		if choice.ContributorPool, err = choice.ContributorPool.Add(split.ContributorCut); err != nil {
			return nil, errors.Wrap(err, "contributor pool")
		}
	} else if split, err = split.FoldContributorCut(); err != nil {
		return nil, errors.Wrap(err, "fold contributor cut")
	}

	var key []byte
	if split.Net.IsPositive() {
		if _, key, err = h.ledger.contribute(db, choice, c.msg.Contributor, split.Net, c.cycle); err != nil {
			return nil, errors.Wrap(err, "contribute")
		}
	}
	if _, err := h.choices.Put(db, ChoiceKey(choice.TopicID, choice.ID), choice); err != nil {
		return nil, errors.Wrap(err, "store choice")
	}

	// All state is updated. Only now the funds are moved.
	custody, err := split.Net.Add(split.ContributorCut)
	if err != nil {
		return nil, errors.Wrap(err, "custody amount")
	}
	payouts := []struct {
		to     weave.Address
		amount coin.Coin
		name   string
	}{
		{to: c.conf.Funds, amount: split.ArenaCut, name: "arena cut"},
		{to: c.topic.Funds, amount: split.TopicCut, name: "topic cut"},
		{to: choice.Funds, amount: split.ChoiceCut, name: "choice cut"},
		{to: ChoiceAccount(choice.TopicID, choice.ID), amount: custody, name: "position"},
	}
	for _, p := range payouts {
		if err := h.capital.TransferFrom(db, SpenderAddress(), c.msg.Contributor, p.to, p.amount); err != nil {
			return nil, errors.Wrap(err, p.name)
		}
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *contributeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*contribution, error) {
	var msg ContributeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Contributor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "contributor signature missing")
	}
	topic, choice, cycle, err := settledChoice(ctx, db, h.topics, h.choices, msg.TopicID, msg.ChoiceID)
	if err != nil {
		return nil, err
	}
	if topic.Deleted {
		return nil, errors.Wrapf(ErrDeletedTopic, "topic %d", topic.ID)
	}
	if choice.Deleted {
		return nil, errors.Wrapf(ErrDeletedChoice, "choice %d", choice.ID)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if msg.Amount.Ticker != conf.Token {
		return nil, errors.Wrapf(errors.ErrCurrency, "contribution must be in %s", conf.Token)
	}
	if msg.Amount.Compare(conf.MinContribution) < 0 {
		return nil, errors.Wrapf(ErrBelowMinimumContribution, "minimum is %s", conf.MinContribution)
	}
	split, err := Split(msg.Amount, contributionRates(&conf, topic, choice.Fee))
	if err != nil {
		return nil, errors.Wrap(err, "split")
	}
	if err := h.capital.CanTransferFrom(db, SpenderAddress(), msg.Contributor, msg.Amount); err != nil {
		return nil, err
	}
	return &contribution{
		msg:    &msg,
		conf:   &conf,
		topic:  topic,
		choice: choice,
		split:  split,
		cycle:  cycle,
	}, nil
}

// withdrawHandler releases the tokens of one or all positions of an owner.
type withdrawHandler struct {
	auth    x.Authenticator
	topics  orm.ModelBucket
	choices orm.ModelBucket
	ledger  *ledger
	capital CapitalLedger
}

// withdrawal is a validated withdraw request.
type withdrawal struct {
	owner   weave.Address
	choice  *Choice
	indexes []uint64
	rate    uint32
	cycle   int64
}

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	w, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	var released coin.Coin
	for _, index := range w.indexes {
		amount, err := h.ledger.withdraw(db, w.choice, w.owner, index, w.rate, w.cycle)
		if err != nil {
			return nil, errors.Wrapf(err, "withdraw position %d", index)
		}
		if released, err = released.Add(amount); err != nil {
			return nil, errors.Wrap(err, "released")
		}
	}
	if _, err := h.choices.Put(db, ChoiceKey(w.choice.TopicID, w.choice.ID), w.choice); err != nil {
		return nil, errors.Wrap(err, "store choice")
	}
	if err := h.capital.Transfer(db, ChoiceAccount(w.choice.TopicID, w.choice.ID), w.owner, released); err != nil {
		return nil, errors.Wrap(err, "release funds")
	}
	return &weave.DeliverResult{}, nil
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*withdrawal, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}

	var (
		w                 withdrawal
		topicID, choiceID uint64
		all               bool
	)
	switch m := msg.(type) {
	case *WithdrawMsg:
		w.owner, topicID, choiceID = m.Owner, m.TopicID, m.ChoiceID
		w.indexes = []uint64{m.Index}
	case *WithdrawAllMsg:
		w.owner, topicID, choiceID = m.Owner, m.TopicID, m.ChoiceID
		all = true
	default:
		return nil, errors.Wrapf(errors.ErrType, "unexpected message %T", msg)
	}
	if !h.auth.HasAddress(ctx, w.owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}

	topic, choice, cycle, err := settledChoice(ctx, db, h.topics, h.choices, topicID, choiceID)
	if err != nil {
		return nil, err
	}
	w.choice, w.rate, w.cycle = choice, topic.AccrualRate, cycle
	if all {
		if w.indexes, err = h.ledger.activeIndexes(db, w.choice, w.owner); err != nil {
			return nil, err
		}
		if len(w.indexes) == 0 {
			return nil, errors.Wrap(ErrPositionNotFound, "no active positions")
		}
	}
	for _, index := range w.indexes {
		if _, err := h.ledger.withdrawable(db, w.choice, w.owner, index, w.rate, w.cycle); err != nil {
			return nil, err
		}
	}
	return &w, nil
}

// transferHandler moves positions of an owner to a recipient.
type transferHandler struct {
	auth    x.Authenticator
	topics  orm.ModelBucket
	choices orm.ModelBucket
	ledger  *ledger
}

// positionTransfer is a validated transfer request.
type positionTransfer struct {
	owner     weave.Address
	recipient weave.Address
	choice    *Choice
	indexes   []uint64
	rate      uint32
	cycle     int64
}

func (h *transferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *transferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	t, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.transfer(db, t.choice, t.owner, t.recipient, t.indexes, t.rate, t.cycle); err != nil {
		return nil, errors.Wrap(err, "transfer")
	}
	if _, err := h.choices.Put(db, ChoiceKey(t.choice.TopicID, t.choice.ID), t.choice); err != nil {
		return nil, errors.Wrap(err, "store choice")
	}
	return &weave.DeliverResult{}, nil
}

func (h *transferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*positionTransfer, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}

	var (
		t                 positionTransfer
		topicID, choiceID uint64
		all               bool
	)
	switch m := msg.(type) {
	case *TransferPositionMsg:
		t.owner, t.recipient, topicID, choiceID = m.Owner, m.Recipient, m.TopicID, m.ChoiceID
		t.indexes = []uint64{m.Index}
	case *TransferPositionsMsg:
		t.owner, t.recipient, topicID, choiceID = m.Owner, m.Recipient, m.TopicID, m.ChoiceID
		t.indexes = m.Indexes
	case *TransferAllPositionsMsg:
		t.owner, t.recipient, topicID, choiceID = m.Owner, m.Recipient, m.TopicID, m.ChoiceID
		all = true
	default:
		return nil, errors.Wrapf(errors.ErrType, "unexpected message %T", msg)
	}
	if !h.auth.HasAddress(ctx, t.owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}

	topic, choice, cycle, err := settledChoice(ctx, db, h.topics, h.choices, topicID, choiceID)
	if err != nil {
		return nil, err
	}
	t.choice, t.rate, t.cycle = choice, topic.AccrualRate, cycle
	if all {
		if t.indexes, err = h.ledger.liveIndexes(db, t.choice, t.owner); err != nil {
			return nil, err
		}
	}
	if _, err := h.ledger.transferable(db, t.choice, t.owner, t.recipient, t.indexes, t.rate, t.cycle); err != nil {
		return nil, err
	}
	return &t, nil
}

type removeTopicHandler struct {
	auth   x.Authenticator
	topics orm.ModelBucket
}

func (h *removeTopicHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *removeTopicHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	topic, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	topic.Deleted = true
	if _, err := h.topics.Put(db, TopicKey(topic.ID), topic); err != nil {
		return nil, errors.Wrap(err, "store topic")
	}
	return &weave.DeliverResult{}, nil
}

func (h *removeTopicHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Topic, error) {
	var msg RemoveTopicMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	topic, err := loadTopic(db, h.topics, msg.TopicID)
	if err != nil {
		return nil, err
	}
	if topic.Deleted {
		return nil, errors.Wrapf(ErrDeletedTopic, "topic %d", topic.ID)
	}
	return topic, nil
}

type removeChoiceHandler struct {
	auth    x.Authenticator
	topics  orm.ModelBucket
	choices orm.ModelBucket
}

func (h *removeChoiceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *removeChoiceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	choice, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	choice.Deleted = true
	if _, err := h.choices.Put(db, ChoiceKey(choice.TopicID, choice.ID), choice); err != nil {
		return nil, errors.Wrap(err, "store choice")
	}
	return &weave.DeliverResult{}, nil
}

func (h *removeChoiceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Choice, error) {
	var msg RemoveChoiceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	// The choice aggregates are not settled here. Settlement happens on
	// the next ledger operation and does not depend on the deleted flag.
	choice, err := loadChoice(db, h.choices, msg.TopicID, msg.ChoiceID)
	if err != nil {
		return nil, err
	}
	if choice.Deleted {
		return nil, errors.Wrapf(ErrDeletedChoice, "choice %d", choice.ID)
	}
	return choice, nil
}

func requireAdmin(ctx weave.Context, db weave.KVStore, auth x.Authenticator) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Admin) {
		return errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return nil
}

func blockHeight(ctx weave.Context) (int64, error) {
	height, ok := weave.GetHeight(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block height not present in context")
	}
	return height, nil
}

func loadTopic(db weave.ReadOnlyKVStore, topics orm.ModelBucket, topicID uint64) (*Topic, error) {
	var topic Topic
	if err := topics.One(db, TopicKey(topicID), &topic); err != nil {
		return nil, errors.Wrapf(err, "topic %d", topicID)
	}
	return &topic, nil
}

func loadChoice(db weave.ReadOnlyKVStore, choices orm.ModelBucket, topicID, choiceID uint64) (*Choice, error) {
	var choice Choice
	if err := choices.One(db, ChoiceKey(topicID, choiceID), &choice); err != nil {
		return nil, errors.Wrapf(err, "choice %d of topic %d", choiceID, topicID)
	}
	return &choice, nil
}

// settledChoice loads a choice together with its topic and settles the
// choice aggregates to the current cycle of the topic.
func settledChoice(ctx weave.Context, db weave.ReadOnlyKVStore, topics, choices orm.ModelBucket, topicID, choiceID uint64) (*Topic, *Choice, int64, error) {
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	return settleAt(db, topics, choices, topicID, choiceID, height)
}

func settleAt(db weave.ReadOnlyKVStore, topics, choices orm.ModelBucket, topicID, choiceID uint64, height int64) (*Topic, *Choice, int64, error) {
	topic, err := loadTopic(db, topics, topicID)
	if err != nil {
		return nil, nil, 0, err
	}
	choice, err := loadChoice(db, choices, topicID, choiceID)
	if err != nil {
		return nil, nil, 0, err
	}
	cycle := topic.CurrentCycle(height)
	SettleChoice(choice, topic.AccrualRate, cycle)
	return topic, choice, cycle, nil
}

func canCollectFee(db weave.KVStore, capital CapitalLedger, payer weave.Address, fee coin.Coin) error {
	if !fee.IsPositive() {
		return nil
	}
	return capital.CanTransferFrom(db, SpenderAddress(), payer, fee)
}

func collectFee(db weave.KVStore, capital CapitalLedger, payer, to weave.Address, fee coin.Coin) error {
	if !fee.IsPositive() {
		return nil
	}
	return capital.TransferFrom(db, SpenderAddress(), payer, to, fee)
}
