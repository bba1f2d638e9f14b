package narytree

import (
	"github.com/cockroachdb/errors"
	"github.com/forestrie/go-narytree/arena"
	"github.com/forestrie/go-narytree/rebalance"
	"github.com/forestrie/go-narytree/succinct"
)

var (
	ErrInvalidHandle = errors.New("narytree: invalid handle")
	ErrEmptyTree     = errors.New("narytree: empty tree")
)

// Errors surfaced unchanged from the component packages.
var (
	ErrIndexOutOfRange   = arena.ErrIndexOutOfRange
	ErrMalformedEncoding = succinct.ErrMalformedEncoding
	ErrBadMaxChildren    = rebalance.ErrBadMaxChildren
	ErrBadPolicy         = rebalance.ErrBadPolicy
)
