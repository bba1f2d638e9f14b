package rebalance

/*

# Rebalancing arena trees

Two algorithms, with opposite contracts:

Balance (Full Reconstruction) discards the shape. It keeps the payloads and
their count, collected in breadth-first order, and rebuilds a depth-minimal
tree with at most maxChildren children per node. For a subtree over the values
v[s:e], v[s] is the subtree root and the r = e-s-1 remaining values are split
over min(r, maxChildren) child subtrees, r/k each, the first r%k getting one
extra:

	r = 7, k = 3     [ root | 3 | 2 | 2 ]

The resulting depth is at most ceil(log_k(n)) + 1.

Reorder (Locality Reorder) keeps the shape, the payloads and every
parent/child relation. Only ids change: a breadth-first walk from the root
assigns ids in visitation order, so ids increase with distance from the root
and the children of a node occupy one contiguous id range. Tombstoned slots are
dropped, so Reorder also compacts.

Both return a new arena and never modify their input, so a caller can replace
its arena in a single assignment or keep the old one if anything fails.

Policy gathers the parameters that decide when either algorithm is worth
running: the mutation threshold and locality floor for the lazy, implicit
Reorder, and the depth multiplier and branching factor for the explicit
NeedsBalance check.

*/
