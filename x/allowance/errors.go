package allowance

import "github.com/iov-one/weave/errors"

var (
	// ErrInsufficientAllowance is returned when a spender tries to move more
	// funds than the owner approved.
	ErrInsufficientAllowance = errors.Register(2100, "insufficient allowance")
)
