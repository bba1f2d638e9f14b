package narytree

import (
	"github.com/forestrie/go-narytree/treestats"
)

// Statistics returns a snapshot of the tree's structure. It does not modify
// the tree.
func (t *Tree[V]) Statistics() treestats.Statistics {
	return treestats.Collect(t.arena)
}

func (t *Tree[V]) LocalityScore() float64 {
	return treestats.LocalityScore(t.arena)
}

func (t *Tree[V]) LocalityStatistics() treestats.LocalityStats {
	return treestats.Locality(t.arena)
}

func (t *Tree[V]) MemoryStatistics() treestats.MemoryStats {
	return treestats.Memory(t.arena)
}

// MemoryUsage returns the estimated bytes held by the tree's arena and its
// succinct structure.
func (t *Tree[V]) MemoryUsage() uint64 {
	return treestats.MemoryUsage(t.arena)
}

func (t *Tree[V]) CompressionRatio() float64 {
	return treestats.CompressionRatio(t.arena)
}
