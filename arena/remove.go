package arena

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// RemoveSubtree retires id and every descendant of id, releasing their
// payloads, and returns the number of nodes removed.
//
// Retired slots are tombstoned, not compacted: surviving ids do not move.
// Removing the root empties the arena.
func (a *Arena[V]) RemoveSubtree(id ID) (int, error) {
	if err := a.check(id); err != nil {
		return 0, err
	}
	parent := a.parents[id]
	if parent == NoID {
		n := a.count
		a.Reset()
		return n, nil
	}
	if err := a.unlink(parent, id); err != nil {
		return 0, err
	}

	removed := 0
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, a.children[cur]...)
		a.retire(cur)
		removed++
	}
	return removed, nil
}

func (a *Arena[V]) unlink(parent, child ID) error {
	kids := a.children[parent]
	i := slices.Index(kids, child)
	if i < 0 {
		// Should be impossible while invariant 3 holds.
		return errors.Wrapf(ErrInvalidID, "%d is not a child of %d", child, parent)
	}
	a.children[parent] = slices.Delete(kids, i, i+1)
	return nil
}

func (a *Arena[V]) retire(id ID) {
	var zero V
	prev := a.values[id]
	a.values[id] = zero
	a.parents[id] = NoID
	a.children[id] = nil
	a.live.Clear(uint(id))
	a.count--
	a.releaseValue(prev)
}
