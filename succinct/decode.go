package succinct

import (
	"github.com/cockroachdb/errors"
	"github.com/forestrie/go-narytree/arena"
)

// Decode builds a new arena from enc. opts configure the new arena (for
// example its release hook); the arena only takes ownership of the values
// when decoding succeeds.
func Decode[V any](enc Encoding[V], opts ...arena.Option) (*arena.Arena[V], error) {
	if err := enc.checkCounts(); err != nil {
		return nil, err
	}

	a := arena.New[V](append([]arena.Option{arena.WithCapacity(enc.NodeCount)}, opts...)...)
	if enc.NodeCount == 0 {
		return a, nil
	}

	n := StructureBits(enc.NodeCount)
	stack := make([]arena.ID, 0, 64)
	next := 0
	rootClosed := false

	for i := uint(0); i < n; i++ {
		if !enc.Structure.Test(i) {
			if len(stack) == 0 {
				return nil, errors.Wrapf(ErrMalformedEncoding, "unmatched close bit at %d", i)
			}
			stack = stack[:len(stack)-1]
			rootClosed = len(stack) == 0
			continue
		}

		if rootClosed {
			return nil, errors.Wrapf(ErrMalformedEncoding, "open bit at %d after the root closed", i)
		}
		if next >= len(enc.Values) {
			return nil, errors.Wrapf(ErrMalformedEncoding, "open bit at %d has no value", i)
		}

		var id arena.ID
		if len(stack) == 0 {
			id = a.SetRoot(enc.Values[next])
		} else {
			var err error
			if id, err = a.AddChild(stack[len(stack)-1], enc.Values[next]); err != nil {
				return nil, err
			}
		}
		next++
		stack = append(stack, id)
	}

	// checkCounts fixed the length at 2n with n opens, so a scan that never
	// closed an unopened node ends balanced with every value consumed.
	return a, nil
}

func (e Encoding[V]) checkCounts() error {
	if e.NodeCount < 0 {
		return errors.Wrapf(ErrMalformedEncoding, "negative node count %d", e.NodeCount)
	}
	if uint64(e.NodeCount) > arena.MaxNodes {
		return errors.Wrapf(ErrMalformedEncoding, "node count %d exceeds the id space", e.NodeCount)
	}
	if len(e.Values) != e.NodeCount {
		return errors.Wrapf(ErrMalformedEncoding, "%d values for %d nodes", len(e.Values), e.NodeCount)
	}
	if e.NodeCount == 0 {
		if e.Structure != nil && e.Structure.Len() != 0 {
			return errors.Wrapf(ErrMalformedEncoding, "%d structure bits for an empty tree", e.Structure.Len())
		}
		return nil
	}
	if e.Structure == nil {
		return errors.Wrap(ErrMalformedEncoding, "structure missing")
	}
	if want := StructureBits(e.NodeCount); e.Structure.Len() != want {
		return errors.Wrapf(ErrMalformedEncoding, "%d structure bits, want %d", e.Structure.Len(), want)
	}
	if opens := e.Structure.Count(); opens != uint(len(e.Values)) {
		return errors.Wrapf(ErrMalformedEncoding, "%d open bits for %d values", opens, len(e.Values))
	}
	return nil
}
