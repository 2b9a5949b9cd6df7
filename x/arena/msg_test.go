package arena

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestMsgValidate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg  weave.Msg
		errs map[string]*errors.Error
	}{
		"valid create topic": {
			msg: &CreateTopicMsg{
				Metadata:                 &weave.Metadata{Schema: 1},
				Creator:                  alice,
				Funds:                    alice,
				CycleLength:              100,
				RelativeSupportThreshold: 5000,
				AccrualRate:              MaxRate,
			},
			errs: map[string]*errors.Error{
				"Metadata":                 nil,
				"Creator":                  nil,
				"Funds":                    nil,
				"CycleLength":              nil,
				"FundingPeriod":            nil,
				"RelativeSupportThreshold": nil,
				"AccrualRate":              nil,
			},
		},
		"create topic requires a cycle": {
			msg: &CreateTopicMsg{
				FundingPeriod:            -1,
				RelativeSupportThreshold: MaxRate + 1,
			},
			errs: map[string]*errors.Error{
				"Metadata":                 errors.ErrMetadata,
				"Creator":                  errors.ErrEmpty,
				"Funds":                    errors.ErrEmpty,
				"CycleLength":              errors.ErrInput,
				"FundingPeriod":            errors.ErrInput,
				"RelativeSupportThreshold": ErrInvalidRate,
				"AccrualRate":              errors.ErrInput,
			},
		},
		"create topic with an accrual rate above the maximum": {
			msg: &CreateTopicMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Creator:     alice,
				Funds:       alice,
				CycleLength: 100,
				AccrualRate: MaxRate + 1,
			},
			errs: map[string]*errors.Error{
				"CycleLength": nil,
				"AccrualRate": ErrInvalidRate,
			},
		},
		"valid create choice without a target": {
			msg: &CreateChoiceMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Creator:     alice,
				Funds:       bob,
				Description: "a choice",
			},
			errs: map[string]*errors.Error{
				"Metadata":      nil,
				"Creator":       nil,
				"Funds":         nil,
				"Description":   nil,
				"FundingTarget": nil,
			},
		},
		"create choice with a negative target": {
			msg: &CreateChoiceMsg{
				Metadata:      &weave.Metadata{Schema: 1},
				Creator:       alice,
				Funds:         bob,
				Description:   string(make([]byte, maxDescriptionLength+1)),
				FundingTarget: coin.NewCoin(-5, 0, "IOV"),
			},
			errs: map[string]*errors.Error{
				"Description":   errors.ErrInput,
				"FundingTarget": errors.ErrAmount,
			},
		},
		"contribution must be positive": {
			msg: &ContributeMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Contributor: alice,
				Amount:      coin.NewCoin(0, 0, "IOV"),
			},
			errs: map[string]*errors.Error{
				"Contributor": nil,
				"Amount":      errors.ErrAmount,
			},
		},
		"contribution requires a currency": {
			msg: &ContributeMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Contributor: alice,
				Amount:      coin.Coin{Whole: 4},
			},
			errs: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
		"withdraw requires an owner": {
			msg: &WithdrawMsg{Metadata: &weave.Metadata{Schema: 1}},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    errors.ErrEmpty,
			},
		},
		"withdraw all requires an owner": {
			msg: &WithdrawAllMsg{Metadata: &weave.Metadata{Schema: 1}},
			errs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
		"transfer to self": {
			msg: &TransferPositionMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     alice,
				Recipient: alice,
			},
			errs: map[string]*errors.Error{
				"Owner":     nil,
				"Recipient": errors.ErrInput,
			},
		},
		"transfer of no positions": {
			msg: &TransferPositionsMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     alice,
				Recipient: bob,
			},
			errs: map[string]*errors.Error{
				"Recipient": nil,
				"Indexes":   errors.ErrEmpty,
			},
		},
		"transfer all requires a recipient": {
			msg: &TransferAllPositionsMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    alice,
			},
			errs: map[string]*errors.Error{
				"Owner":     nil,
				"Recipient": errors.ErrEmpty,
			},
		},
		"remove topic requires metadata": {
			msg: &RemoveTopicMsg{TopicID: 1},
			errs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"valid remove choice": {
			msg: &RemoveChoiceMsg{Metadata: &weave.Metadata{Schema: 1}},
			errs: map[string]*errors.Error{
				"Metadata": nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
