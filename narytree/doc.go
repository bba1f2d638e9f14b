package narytree

/*

# N-ary trees in a flat arena

Tree is the engine's public surface. It owns one `arena.Arena`, hands out
Handles to its nodes, and drives the succinct codec, the rebalancer and the
statistics engine over that arena.

## Handles

A Handle is a (tree, id, generation) triple. It carries no ownership. The tree
bumps its generation whenever ids are remapped or the arena is replaced:

- SetRoot, Clear and Destroy
- BalanceTree
- a Locality Reorder that moved at least one id, explicit or lazy
- removing the root

Removing any other subtree tombstones the removed slots instead: handles to
surviving nodes stay valid and handles to removed nodes fail. Retired ids are
never handed out again before the next generation bump, so a stale handle can
not alias a newer node. Any handle whose tree, generation or slot does not
check out fails with ErrInvalidHandle.

A lazy Locality Reorder may run inside AddChild, SetValue or RemoveSubtree.
Each of those returns (or leaves valid) only what the caller asked for: the
handle returned by AddChild is always current, but handles obtained earlier
should be re-fetched when Generation has changed.

## Rebalancing

Every mutation ticks a counter. When it reaches the policy threshold, and
auto rebalance is enabled, the locality score is computed and the tree is
reordered if the score is below the policy floor. Full Reconstruction
(BalanceTree) is never run implicitly; NeedsRebalancing reports when it is
worth calling and AutoBalanceIfNeeded does both.

## Concurrency

A Tree does no locking. Concurrent readers are safe while no mutation is in
flight; mutation requires the caller to hold an exclusive lock on the tree.

*/
