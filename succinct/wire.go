package succinct

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"github.com/forestrie/go-narytree/arena"
	"github.com/fxamacker/cbor/v2"
)

type wireEncoding[V any] struct {
	_         struct{} `cbor:",toarray"`
	NodeCount uint64
	Structure []byte
	Values    []V
}

// Marshal returns the CBOR wire form of enc. V must be CBOR encodable.
func Marshal[V any](enc Encoding[V]) ([]byte, error) {
	if err := enc.checkCounts(); err != nil {
		return nil, err
	}
	structure := enc.Structure
	if structure == nil {
		structure = bitset.New(0)
	}
	sb, err := structure.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "succinct: marshal structure")
	}
	data, err := cbor.Marshal(wireEncoding[V]{
		NodeCount: uint64(enc.NodeCount),
		Structure: sb,
		Values:    enc.Values,
	})
	if err != nil {
		return nil, errors.Wrap(err, "succinct: marshal")
	}
	return data, nil
}

// Unmarshal parses the CBOR wire form. The counts are checked, the nesting is
// left to Decode.
func Unmarshal[V any](data []byte) (Encoding[V], error) {
	var w wireEncoding[V]
	if err := cbor.Unmarshal(data, &w); err != nil {
		return Encoding[V]{}, errors.Wrapf(ErrMalformedEncoding, "cbor: %v", err)
	}
	if w.NodeCount > uint64(maxInt) {
		return Encoding[V]{}, errors.Wrapf(ErrMalformedEncoding, "node count %d", w.NodeCount)
	}
	if err := checkStructureBytes(w.Structure, int(w.NodeCount)); err != nil {
		return Encoding[V]{}, err
	}
	structure := &bitset.BitSet{}
	if len(w.Structure) > 0 {
		if err := structure.UnmarshalBinary(w.Structure); err != nil {
			return Encoding[V]{}, errors.Wrapf(ErrMalformedEncoding, "structure: %v", err)
		}
	}
	enc := Encoding[V]{
		Structure: structure,
		Values:    w.Values,
		NodeCount: int(w.NodeCount),
	}
	if enc.Values == nil {
		enc.Values = []V{}
	}
	if err := enc.checkCounts(); err != nil {
		return Encoding[V]{}, err
	}
	return enc, nil
}

const (
	maxInt = int(^uint(0) >> 1)

	// bitset's binary form: a big-endian uint64 bit length then 64-bit words.
	lengthPrefixBytes = 8
	wordBytes         = 8
)

// checkStructureBytes validates the bitset binary form against nodeCount
// before anything is allocated from its length prefix.
func checkStructureBytes(b []byte, nodeCount int) error {
	if len(b) == 0 && nodeCount == 0 {
		return nil
	}
	if uint64(nodeCount) > arena.MaxNodes {
		return errors.Wrapf(ErrMalformedEncoding, "node count %d exceeds the id space", nodeCount)
	}
	if len(b) < lengthPrefixBytes {
		return errors.Wrapf(ErrMalformedEncoding, "structure of %d bytes has no length", len(b))
	}
	bits := StructureBits(nodeCount)
	if got := binary.BigEndian.Uint64(b[:lengthPrefixBytes]); got != uint64(bits) {
		return errors.Wrapf(ErrMalformedEncoding, "structure claims %d bits, want %d", got, bits)
	}
	want := lengthPrefixBytes + wordBytes*int((bits+63)/64)
	if len(b) != want {
		return errors.Wrapf(ErrMalformedEncoding, "structure is %d bytes, want %d", len(b), want)
	}
	return nil
}
