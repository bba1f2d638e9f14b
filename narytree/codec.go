package narytree

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/forestrie/go-narytree/succinct"
)

// Encode returns the balanced parentheses form of the tree. The payloads are
// shallow copies in preorder.
func (t *Tree[V]) Encode() succinct.Encoding[V] {
	return succinct.Encode(t.arena)
}

// ShapeDigest returns the BLAKE3 digest of the tree's shape.
func (t *Tree[V]) ShapeDigest() [succinct.DigestBytes]byte {
	return succinct.ShapeDigest(t.Encode())
}

// Marshal returns the CBOR wire form of the tree's encoding.
func (t *Tree[V]) Marshal() ([]byte, error) {
	return succinct.Marshal(t.Encode())
}

// Decode builds a new tree from a structure bit sequence, its preorder
// payloads and the node count. Node ids in the result are preorder indices.
// On failure nothing is constructed and no payload is released.
func Decode[V any](structure *bitset.BitSet, values []V, nodeCount int, opts ...Option) (*Tree[V], error) {
	return FromEncoding(succinct.Encoding[V]{
		Structure: structure,
		Values:    values,
		NodeCount: nodeCount,
	}, opts...)
}

func FromEncoding[V any](enc succinct.Encoding[V], opts ...Option) (*Tree[V], error) {
	t, err := New[V](opts...)
	if err != nil {
		return nil, err
	}
	a, err := succinct.Decode(enc, t.arenaOptions()...)
	if err != nil {
		t.debugf("tree %s: decode of %d nodes failed: %v", t.id, enc.NodeCount, err)
		return nil, err
	}
	t.arena = a
	return t, nil
}

// Unmarshal decodes a tree from the CBOR wire form produced by Marshal.
func Unmarshal[V any](data []byte, opts ...Option) (*Tree[V], error) {
	enc, err := succinct.Unmarshal[V](data)
	if err != nil {
		return nil, err
	}
	return FromEncoding(enc, opts...)
}
