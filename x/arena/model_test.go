package arena

import (
	"testing"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCurrentCycle(t *testing.T) {
	topic := Topic{CreatedAt: 10, CycleLength: 100}

	cases := map[string]struct {
		height int64
		want   int64
	}{
		"before creation":         {height: 3, want: 0},
		"at creation":             {height: 10, want: 0},
		"last block of the first": {height: 109, want: 0},
		"second cycle":            {height: 110, want: 1},
		"far in the future":       {height: 100010, want: 1000},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, topic.CurrentCycle(tc.height))
		})
	}
}

func TestParsePositionKey(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	topicID, choiceID, got, index, err := ParsePositionKey(PositionKey(7, 3, owner, 12))
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), topicID)
	assert.Equal(t, uint64(3), choiceID)
	assert.Equal(t, true, owner.Equals(got))
	assert.Equal(t, uint64(12), index)

	_, _, _, _, err = ParsePositionKey(ChoiceKey(7, 3))
	assert.IsErr(t, errors.ErrInput, err)
}

func TestPositionTombstone(t *testing.T) {
	cases := map[string]struct {
		p          Position
		tombstoned bool
		active     bool
	}{
		"fresh":     {p: Position{Tokens: iov(1), Shares: iov(0)}, tombstoned: false, active: true},
		"withdrawn": {p: Position{Tokens: iov(0), Shares: iov(4)}, tombstoned: false, active: false},
		"moved":     {p: Position{Tokens: iov(0), Shares: iov(0)}, tombstoned: true, active: false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.tombstoned, tc.p.Tombstoned())
			assert.Equal(t, tc.active, tc.p.Active())
		})
	}
}
