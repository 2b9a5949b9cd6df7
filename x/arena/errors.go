package arena

import "github.com/iov-one/weave/errors"

var (
	ErrTopicFeeExceeded         = errors.Register(2000, "max topic fee exceeded")
	ErrChoiceFeeExceeded        = errors.Register(2001, "max choice fee exceeded")
	ErrFundingFeeExceeded       = errors.Register(2002, "funding percentage exceeded 100%")
	ErrAccumulativeFeeExceeded  = errors.Register(2003, "accumulative fees exceeded 100%")
	ErrHighFeePercentage        = errors.Register(2004, "fee percentage too high")
	ErrBelowMinimumContribution = errors.Register(2005, "less than min contribution amount")
	ErrDeletedTopic             = errors.Register(2006, "topic deleted")
	ErrDeletedChoice            = errors.Register(2007, "choice deleted")
	ErrPositionNotFound         = errors.Register(2008, "position not found")
	ErrInvalidRate              = errors.Register(2009, "invalid rate")
)
