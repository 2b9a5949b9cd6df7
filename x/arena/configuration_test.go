package arena

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		c    Configuration
		errs map[string]*errors.Error
	}{
		"all good": {
			c: Configuration{
				Metadata:         &weave.Metadata{Schema: 1},
				Name:             "attention",
				Token:            "IOV",
				Admin:            weavetest.NewCondition().Address(),
				Funds:            weavetest.NewCondition().Address(),
				MinContribution:  coin.NewCoin(0, 1000, "IOV"),
				ArenaFee:         500,
				MaxTopicFee:      2000,
				MaxChoiceFee:     2000,
				TopicCreationFee: coin.NewCoin(10, 0, "IOV"),
			},
			errs: map[string]*errors.Error{
				"Metadata":          nil,
				"Name":              nil,
				"Token":             nil,
				"Admin":             nil,
				"Funds":             nil,
				"MinContribution":   nil,
				"ArenaFee":          nil,
				"MaxTopicFee":       nil,
				"MaxChoiceFee":      nil,
				"TopicCreationFee":  nil,
				"ChoiceCreationFee": nil,
			},
		},
		"certain fields are required": {
			c: Configuration{},
			errs: map[string]*errors.Error{
				"Metadata":        errors.ErrMetadata,
				"Name":            errors.ErrEmpty,
				"Token":           errors.ErrCurrency,
				"Admin":           errors.ErrEmpty,
				"Funds":           errors.ErrEmpty,
				"MinContribution": nil,
			},
		},
		"rates above 100%": {
			c: Configuration{
				ArenaFee:     MaxRate + 1,
				MaxTopicFee:  MaxRate + 1,
				MaxChoiceFee: MaxRate,
			},
			errs: map[string]*errors.Error{
				"ArenaFee":     ErrInvalidRate,
				"MaxTopicFee":  ErrInvalidRate,
				"MaxChoiceFee": nil,
			},
		},
		"fees in a foreign token": {
			c: Configuration{
				Token:             "IOV",
				MinContribution:   coin.NewCoin(1, 0, "ETH"),
				TopicCreationFee:  coin.NewCoin(-1, 0, "IOV"),
				ChoiceCreationFee: coin.NewCoin(1, 0, "ETH"),
			},
			errs: map[string]*errors.Error{
				"Token":             nil,
				"MinContribution":   errors.ErrCurrency,
				"TopicCreationFee":  errors.ErrAmount,
				"ChoiceCreationFee": errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.c.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
