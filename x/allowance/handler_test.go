package allowance

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestApprove(t *testing.T) {
	var (
		ownerCond   = weavetest.NewCondition()
		spenderCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Conditions    []weave.Condition
		Msg           *ApproveMsg
		WantCheckErr  *errors.Error
		WantAllowance coin.Coin
	}{
		"owner can approve a spender": {
			Conditions: []weave.Condition{ownerCond},
			Msg: &ApproveMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    ownerCond.Address(),
				Spender:  spenderCond.Address(),
				Amount:   coin.NewCoin(7, 0, "IOV"),
			},
			WantAllowance: coin.NewCoin(7, 0, "IOV"),
		},
		"owner signature is required": {
			Conditions: []weave.Condition{spenderCond},
			Msg: &ApproveMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    ownerCond.Address(),
				Spender:  spenderCond.Address(),
				Amount:   coin.NewCoin(7, 0, "IOV"),
			},
			WantCheckErr:  errors.ErrUnauthorized,
			WantAllowance: coin.NewCoin(0, 0, "IOV"),
		},
		"negative amount is rejected": {
			Conditions: []weave.Condition{ownerCond},
			Msg: &ApproveMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    ownerCond.Address(),
				Spender:  spenderCond.Address(),
				Amount:   coin.NewCoin(-1, 0, "IOV"),
			},
			WantCheckErr:  errors.ErrAmount,
			WantAllowance: coin.NewCoin(0, 0, "IOV"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "allowance")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := NewController(cash.NewController(cash.NewBucket()))
			RegisterRoutes(rt, auth, ctrl)

			ctx := weave.WithHeight(context.Background(), 5)
			ctx = auth.SetConditions(ctx, tc.Conditions...)
			tx := &weavetest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: want %q, got %+v", tc.WantCheckErr, err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected deliver error: want %q, got %+v", tc.WantCheckErr, err)
			}

			got, err := ctrl.Allowance(db, ownerCond.Address(), spenderCond.Address(), "IOV")
			if err != nil {
				t.Fatalf("cannot get allowance: %s", err)
			}
			if !got.Equals(tc.WantAllowance) {
				t.Fatalf("want %v allowance, got %v", tc.WantAllowance, got)
			}
		})
	}
}
