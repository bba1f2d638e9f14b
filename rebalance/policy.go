package rebalance

import (
	"github.com/cockroachdb/errors"
)

const (
	DefaultThreshold       = 100
	DefaultLocalityFloor   = 0.7
	DefaultDepthMultiplier = 2.0
	DefaultMaxChildren     = 3

	// smallTreeNodes is the size at or below which a tree never needs a full
	// rebalance.
	smallTreeNodes = 3
)

// Policy holds the rebalancing parameters of a tree.
type Policy struct {
	// Threshold is the number of mutations between lazy locality checks.
	// Zero checks after every mutation.
	Threshold uint64
	// LocalityFloor is the locality score below which a check runs Reorder.
	LocalityFloor float64
	// DepthMultiplier scales the optimal depth in NeedsBalance.
	DepthMultiplier float64
	// MaxChildren is the branching factor used for the optimal depth estimate
	// and as the default for Balance.
	MaxChildren int
}

func DefaultPolicy() Policy {
	return Policy{
		Threshold:       DefaultThreshold,
		LocalityFloor:   DefaultLocalityFloor,
		DepthMultiplier: DefaultDepthMultiplier,
		MaxChildren:     DefaultMaxChildren,
	}
}

func (p Policy) Validate() error {
	if p.LocalityFloor < 0 || p.LocalityFloor > 1 {
		return errors.Wrapf(ErrBadPolicy, "locality floor %v not in [0,1]", p.LocalityFloor)
	}
	if p.DepthMultiplier <= 0 {
		return errors.Wrapf(ErrBadPolicy, "depth multiplier %v", p.DepthMultiplier)
	}
	if p.MaxChildren < 1 {
		return errors.Wrapf(ErrBadPolicy, "max children %d", p.MaxChildren)
	}
	return nil
}

// WantsReorder reports whether a tree with the given locality score should be
// reordered.
func (p Policy) WantsReorder(score float64) bool {
	return score < p.LocalityFloor
}

// NeedsBalance reports whether a tree of size nodes and the given max depth is
// deep enough, relative to OptimalDepth, to warrant Balance.
func (p Policy) NeedsBalance(size int, depth int) bool {
	if size <= smallTreeNodes {
		return false
	}
	optimal := OptimalDepth(size, p.MaxChildren)
	return float64(depth) > float64(optimal)*p.DepthMultiplier
}

// OptimalDepth returns ceil(log_k(n)), the smallest d with k^d >= n.
//
// For k < 2 no branching is possible and the result is n.
func OptimalDepth(n int, k int) int {
	if n <= 1 {
		return 0
	}
	if k < 2 {
		return n
	}
	if k >= n {
		return 1
	}
	// k < n, and n fits an arena id, so p*k cannot overflow.
	d := 0
	for p := uint64(1); p < uint64(n); p *= uint64(k) {
		d++
	}
	return d
}

// Counter counts mutations between lazy locality checks.
type Counter struct {
	n uint64
}

// Tick records one mutation and reports whether the threshold was reached.
// The count restarts after every check, so a check costs at most once per
// threshold mutations whether or not it reorders.
func (c *Counter) Tick(threshold uint64) bool {
	c.n++
	if c.n < threshold {
		return false
	}
	c.n = 0
	return true
}

func (c *Counter) Count() uint64 { return c.n }

func (c *Counter) Reset() { c.n = 0 }
