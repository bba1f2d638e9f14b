package arena

/*

# Arena storage for N-ary trees

This package stores every node of a tree in parallel, id-indexed slices instead
of individually allocated, pointer-linked nodes. Layouts are explicit, ids are
plain indices, and hot paths such as ValueAt put the burden of knowledge on
the caller.

## Layout

For a node with id i:

	values[i]    payload (opaque to the arena)
	parents[i]   parent id, NoID for the root
	children[i]  ordered child ids, in insertion order
	live.Test(i) true while the slot holds a node

The root, when present, is always id 0.

## Core invariants

1. ids range over [0, Cap())
2. every live non-root node's parent is live
3. len(children[i]) is the number of live nodes whose parent is i
4. the parent relation is acyclic: nodes are only ever created as children of
   existing nodes and are never re-parented

## Tombstones

RemoveSubtree retires slots rather than compacting them. Surviving ids are
stable and retired ids are never handed out again by this arena. Compaction
only happens when a rebuilt arena replaces this one (see `rebalance`).

## Ownership

The arena exclusively owns every stored payload. When a release hook is
configured it is called exactly once per payload: on overwrite, on subtree
removal, or on Reset.

*/
