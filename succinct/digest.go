package succinct

import (
	"encoding/binary"
	"hash"

	"github.com/zeebo/blake3"
)

const DigestBytes = 32

// ShapeDigest returns a BLAKE3 digest of the tree shape: the node count
// followed by the structure bits, packed MSB-first. Values never participate,
// two trees share a digest exactly when they have the same shape.
func ShapeDigest[V any](enc Encoding[V]) [DigestBytes]byte {
	h := blake3.New()
	hashWriteUint64(h, uint64(enc.NodeCount))

	n := StructureBits(enc.NodeCount)
	var acc byte
	for i := uint(0); i < n; i++ {
		acc <<= 1
		if enc.Structure != nil && enc.Structure.Test(i) {
			acc |= 1
		}
		if i%8 == 7 {
			_, _ = h.Write([]byte{acc})
			acc = 0
		}
	}
	if rem := n % 8; rem != 0 {
		_, _ = h.Write([]byte{acc << (8 - rem)})
	}

	var out [DigestBytes]byte
	copy(out[:], h.Sum(nil))
	return out
}

// hashWriteUint64 writes a uint64 to a hasher in big-endian layout.
func hashWriteUint64(hasher hash.Hash, value uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	_, _ = hasher.Write(b[:])
}
