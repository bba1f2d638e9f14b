package rebalance

import "github.com/cockroachdb/errors"

var (
	ErrBadMaxChildren = errors.New("rebalance: max children must be at least 1")
	ErrBadPolicy      = errors.New("rebalance: invalid policy")
)
