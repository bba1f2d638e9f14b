package arena

import "unsafe"

const (
	idBytes          = uint64(unsafe.Sizeof(ID(0)))
	sliceHeaderBytes = uint64(unsafe.Sizeof([]ID(nil)))
	wordBytes        = 8
)

// Footprint records the byte size of each backing array of an arena.
type Footprint struct {
	ValueBytes     uint64
	ParentBytes    uint64
	AdjacencyBytes uint64
	LiveBytes      uint64
}

func (f Footprint) Total() uint64 {
	return f.ValueBytes + f.ParentBytes + f.AdjacencyBytes + f.LiveBytes
}

// ValueBytes returns the in-arena size of one payload slot of type V.
func ValueBytes[V any]() uint64 {
	var v V
	return uint64(unsafe.Sizeof(v))
}

// Footprint returns the byte footprint of the slots currently in use.
//
// Retired slots are counted: a tombstone still occupies its slot until the
// arena is rebuilt.
func (a *Arena[V]) Footprint() Footprint {
	slots := uint64(len(a.values))

	var edges uint64
	for _, kids := range a.children {
		edges += uint64(len(kids))
	}

	return Footprint{
		ValueBytes:     slots * ValueBytes[V](),
		ParentBytes:    slots * idBytes,
		AdjacencyBytes: slots*sliceHeaderBytes + edges*idBytes,
		LiveBytes:      LiveBitsBytes(slots),
	}
}

// LiveBitsBytes returns the bytes needed by the live-slot bitset for slots
// slots, rounded up to whole 64 bit words.
func LiveBitsBytes(slots uint64) uint64 {
	return (slots + 63) / 64 * wordBytes
}
