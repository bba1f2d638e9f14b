package treestats

import (
	"unsafe"

	"github.com/forestrie/go-narytree/arena"
	"github.com/forestrie/go-narytree/succinct"
)

const (
	pointerBytes = uint64(unsafe.Sizeof(uintptr(0)))

	// NodeOverheadBytes models the allocator and bookkeeping overhead of one
	// individually allocated node in a pointer-linked tree.
	NodeOverheadBytes = 32
)

// MemoryUsage returns the bytes held by a: its succinct structure bits,
// rounded up to whole bytes, plus the footprint of every backing array.
func MemoryUsage[V any](a *arena.Arena[V]) uint64 {
	return succinct.StructureBytes(a.Len()) + a.Footprint().Total()
}

// TraditionalBytes models the same n nodes as a pointer-linked tree: payload,
// parent, first-child and next-sibling pointers, and per-node overhead.
func TraditionalBytes[V any](n int) uint64 {
	return uint64(n) * (arena.ValueBytes[V]() + 3*pointerBytes + NodeOverheadBytes)
}

// CompressionRatio returns MemoryUsage relative to TraditionalBytes, below 1.0
// when the arena is smaller. It is 1.0 for an empty tree.
func CompressionRatio[V any](a *arena.Arena[V]) float64 {
	if a.Len() == 0 {
		return 1.0
	}
	return float64(MemoryUsage(a)) / float64(TraditionalBytes[V](a.Len()))
}

type MemoryStats struct {
	NodeMemoryBytes uint64
	DataMemoryBytes uint64
	TotalBytes      uint64
	BytesPerNode    float64
}

func Memory[V any](a *arena.Arena[V]) MemoryStats {
	f := a.Footprint()
	st := MemoryStats{
		NodeMemoryBytes: f.ParentBytes + f.AdjacencyBytes + f.LiveBytes + succinct.StructureBytes(a.Len()),
		DataMemoryBytes: f.ValueBytes,
	}
	st.TotalBytes = st.NodeMemoryBytes + st.DataMemoryBytes
	if a.Len() > 0 {
		st.BytesPerNode = float64(st.TotalBytes) / float64(a.Len())
	}
	return st
}
