package app

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/arena/x/arena"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenInitOptions(t *testing.T) {
	admin := weavetest.NewCondition().Address()

	cases := map[string]struct {
		args   []string
		ticker string
	}{
		"default ticker": {
			args:   []string{"IOV", admin.String()},
			ticker: "IOV",
		},
		"custom ticker": {
			args:   []string{"ATT", admin.String()},
			ticker: "ATT",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := GenInitOptions(tc.args)
			require.NoError(t, err)

			var opts weave.Options
			require.NoError(t, json.Unmarshal(raw, &opts))

			db := store.MemStore()
			migration.MustInitPkg(db, "arena")
			require.NoError(t, (&arena.Initializer{}).FromGenesis(opts, weave.GenesisParams{}, db))

			var conf arena.Configuration
			require.NoError(t, gconf.Load(db, "arena", &conf))
			assert.Equal(t, tc.ticker, conf.Token)
			assert.Equal(t, admin, conf.Admin)
			assert.Equal(t, tc.ticker, conf.TopicCreationFee.Ticker)
		})
	}
}
