package allowance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewAllowanceBucket().Register("allowances", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("allowance", r)
	r.Handle(&ApproveMsg{}, &approveHandler{
		auth: auth,
		ctrl: ctrl,
	})
}

type approveHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *approveHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *approveHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Approve(db, msg.Owner, msg.Spender, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "approve")
	}
	return &weave.DeliverResult{Data: allowanceKey(msg.Owner, msg.Spender, msg.Amount.Ticker)}, nil
}

func (h *approveHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveMsg, error) {
	var msg ApproveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	return &msg, nil
}
