package narytree

import (
	"github.com/cockroachdb/errors"
	"github.com/forestrie/go-narytree/arena"
)

// Handle refers to one node of one tree at one generation. The zero Handle
// is never valid.
type Handle[V any] struct {
	tree *Tree[V]
	id   arena.ID
	gen  uint64
}

// ID returns the arena id the handle refers to.
func (h Handle[V]) ID() arena.ID { return h.id }

func (h Handle[V]) IsZero() bool { return h.tree == nil }

func (t *Tree[V]) handle(id arena.ID) Handle[V] {
	return Handle[V]{tree: t, id: id, gen: t.gen}
}

// resolve checks h against the tree and returns its arena id.
func (t *Tree[V]) resolve(h Handle[V]) (arena.ID, error) {
	if h.tree != t {
		return arena.NoID, errors.Wrap(ErrInvalidHandle, "handle belongs to another tree")
	}
	if h.gen != t.gen {
		return arena.NoID, errors.Wrapf(ErrInvalidHandle, "generation %d, tree is at %d", h.gen, t.gen)
	}
	if !t.arena.Valid(h.id) {
		return arena.NoID, errors.Wrapf(ErrInvalidHandle, "id %d is not live", h.id)
	}
	return h.id, nil
}

// Valid reports whether h currently refers to a live node of t.
func (t *Tree[V]) Valid(h Handle[V]) bool {
	_, err := t.resolve(h)
	return err == nil
}
