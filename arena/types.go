package arena

import (
	"github.com/cockroachdb/errors"
)

// ID is a node slot index.
type ID uint32

// NoID is the parent of the root and the "no node" sentinel.
const NoID = ^ID(0)

// MaxNodes is the largest slot count an arena will hand out ids for.
const MaxNodes = uint64(NoID)

var (
	ErrInvalidID       = errors.New("arena: invalid id")
	ErrIndexOutOfRange = errors.New("arena: child index out of range")
	ErrEmpty           = errors.New("arena: empty")
	ErrFull            = errors.New("arena: id space exhausted")
)
