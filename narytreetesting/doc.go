// Package narytreetesting provides deterministic tree shapes and payload
// bookkeeping shared by the tests of the arena, succinct, rebalance, treestats
// and narytree packages.
package narytreetesting
