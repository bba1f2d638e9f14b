package narytree

import (
	"github.com/cockroachdb/errors"
	"github.com/forestrie/go-narytree/arena"
	"github.com/forestrie/go-narytree/rebalance"
	"github.com/forestrie/go-narytree/treestats"
)

// smallTree is the size at or below which the lazy locality check is skipped.
const smallTree = 3

func (t *Tree[V]) EnableAutoRebalance()  { t.auto = true }
func (t *Tree[V]) DisableAutoRebalance() { t.auto = false }

func (t *Tree[V]) AutoRebalance() bool { return t.auto }

// SetRebalanceThreshold sets the number of mutations between lazy locality
// checks. 0 checks after every mutation.
func (t *Tree[V]) SetRebalanceThreshold(n uint64) {
	t.policy.Threshold = n
	t.counter.Reset()
}

// Policy returns a copy of the tree's rebalance policy.
func (t *Tree[V]) Policy() rebalance.Policy { return t.policy }

// RebalanceCount returns the number of reorders and balances applied so far.
func (t *Tree[V]) RebalanceCount() uint64 { return t.rebalances }

// BalanceTree rebuilds the tree depth-minimal with at most maxChildren
// children per node. Payloads are moved, never released. All handles are
// invalidated. Trees of fewer than two nodes are left alone.
func (t *Tree[V]) BalanceTree(maxChildren int) error {
	if maxChildren < 1 {
		return errors.Wrapf(ErrBadMaxChildren, "got %d", maxChildren)
	}
	if t.arena.Len() < 2 {
		return nil
	}

	before := t.Depth()
	b, err := rebalance.Balance(t.arena, maxChildren)
	if err != nil {
		return err
	}
	t.arena = b
	t.gen++
	t.rebalances++
	t.counter.Reset()
	t.infof("tree %s: balanced %d nodes, k=%d, depth %d -> %d", t.id, t.arena.Len(), maxChildren, before, t.Depth())
	return nil
}

// RebalanceForLocality reorders the tree so that every node's children occupy
// a contiguous id range. Shape and payloads are unchanged. A tree already in
// that order is left alone and its handles stay valid; otherwise handles are
// invalidated.
func (t *Tree[V]) RebalanceForLocality() error {
	if rebalance.InOrder(t.arena) {
		return nil
	}
	b, mapping, err := rebalance.Reorder(t.arena)
	if err != nil {
		return err
	}
	t.commit(b, mapping)
	return nil
}

// NeedsRebalancing reports whether the tree's depth exceeds the policy's
// multiple of the optimal depth for its size.
func (t *Tree[V]) NeedsRebalancing() bool {
	return t.policy.NeedsBalance(t.Size(), t.Depth())
}

// AutoBalanceIfNeeded runs BalanceTree with the policy's MaxChildren when
// NeedsRebalancing is true, and reports whether it did.
func (t *Tree[V]) AutoBalanceIfNeeded() (bool, error) {
	if !t.NeedsRebalancing() {
		return false, nil
	}
	if err := t.BalanceTree(t.policy.MaxChildren); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Tree[V]) commit(b *arena.Arena[V], mapping []arena.ID) {
	t.arena = b
	if !rebalance.Identity(mapping) {
		t.gen++
	}
	t.rebalances++
	t.counter.Reset()
}

// mutated ticks the mutation counter and, when due, runs the lazy locality
// check. It returns id translated into the current arena.
//
// The reordered arena replaces the current one only if it scores strictly
// better. Breadth first ids can spread a preorder-built tree's leaves away
// from their parents, and such a candidate is dropped.
func (t *Tree[V]) mutated(id arena.ID) arena.ID {
	if !t.counter.Tick(t.policy.Threshold) {
		return id
	}
	if !t.auto || t.arena.Len() <= smallTree {
		return id
	}

	score := treestats.LocalityScore(t.arena)
	if !t.policy.WantsReorder(score) || rebalance.InOrder(t.arena) {
		return id
	}
	b, mapping, err := rebalance.Reorder(t.arena)
	if err != nil {
		t.infof("tree %s: locality reorder failed: %v", t.id, err)
		return id
	}
	after := treestats.LocalityScore(b)
	if after <= score {
		t.debugf("tree %s: kept order of %d nodes, reorder would take locality %.3f -> %.3f",
			t.id, b.Len(), score, after)
		return id
	}
	t.commit(b, mapping)
	t.debugf("tree %s: reordered %d nodes, locality %.3f -> %.3f", t.id, b.Len(), score, after)

	if id == arena.NoID || int(id) >= len(mapping) {
		return id
	}
	return mapping[id]
}
