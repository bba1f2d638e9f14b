package succinct

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Encoding is the succinct form of a tree: 2*NodeCount structure bits plus
// the node payloads in preorder.
type Encoding[V any] struct {
	Structure *bitset.BitSet
	Values    []V
	NodeCount int
}

var (
	ErrMalformedEncoding = errors.New("succinct: malformed encoding")
)

// StructureBits returns the structure length, in bits, for n nodes.
func StructureBits(n int) uint {
	return 2 * uint(n)
}

// StructureBytes returns the structure length for n nodes, bit-packed and
// rounded up to whole bytes.
func StructureBytes(n int) uint64 {
	return (uint64(StructureBits(n)) + 7) / 8
}

// Bits returns the structure as a slice of booleans, open bits true.
func (e Encoding[V]) Bits() []bool {
	n := StructureBits(e.NodeCount)
	out := make([]bool, n)
	if e.Structure == nil {
		return out
	}
	for i := uint(0); i < n; i++ {
		out[i] = e.Structure.Test(i)
	}
	return out
}

// FromBits builds a structure bitset from a slice of booleans, open bits true.
func FromBits(bits []bool) *bitset.BitSet {
	b := bitset.New(uint(len(bits)))
	for i, open := range bits {
		if open {
			b.Set(uint(i))
		}
	}
	return b
}
