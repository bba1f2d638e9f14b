package treestats

import (
	"github.com/forestrie/go-narytree/arena"
)

type Statistics struct {
	TotalNodes         int
	LeafNodes          int
	InternalNodes      int
	MaxDepth           int
	AvgChildrenPerNode float64
	// MaxChildrenSeen and MinChildrenSeen range over internal nodes only,
	// both are 0 when there are none.
	MaxChildrenSeen int
	MinChildrenSeen int
}

// Collect walks every live node of a once.
func Collect[V any](a *arena.Arena[V]) Statistics {
	var st Statistics
	totalChildren := 0

	walkDepths(a, func(id arena.ID, depth int) {
		st.TotalNodes++
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		n := len(a.Children(id))
		if n == 0 {
			st.LeafNodes++
			return
		}
		st.InternalNodes++
		totalChildren += n
		if n > st.MaxChildrenSeen {
			st.MaxChildrenSeen = n
		}
		if st.MinChildrenSeen == 0 || n < st.MinChildrenSeen {
			st.MinChildrenSeen = n
		}
	})

	if st.InternalNodes > 0 {
		st.AvgChildrenPerNode = float64(totalChildren) / float64(st.InternalNodes)
	}
	return st
}

// MaxDepth returns the number of nodes on the longest root-to-leaf path.
func MaxDepth[V any](a *arena.Arena[V]) int {
	deepest := 0
	walkDepths(a, func(_ arena.ID, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// Level returns the number of edges between id and the root, -1 if id is not live.
func Level[V any](a *arena.Arena[V], id arena.ID) int {
	if !a.Valid(id) {
		return -1
	}
	level := 0
	for {
		p, err := a.Parent(id)
		if err != nil || p == arena.NoID {
			return level
		}
		id = p
		level++
	}
}

// SubtreeDepth returns the depth of the subtree rooted at id, 0 if id is not live.
func SubtreeDepth[V any](a *arena.Arena[V], id arena.ID) int {
	if !a.Valid(id) {
		return 0
	}
	deepest := 0
	walkFrom(a, id, func(_ arena.ID, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

func walkDepths[V any](a *arena.Arena[V], fn func(id arena.ID, depth int)) {
	root, ok := a.Root()
	if !ok {
		return
	}
	walkFrom(a, root, fn)
}

// walkFrom visits the subtree at start depth first, start at depth 1.
func walkFrom[V any](a *arena.Arena[V], start arena.ID, fn func(id arena.ID, depth int)) {
	type item struct {
		id    arena.ID
		depth int
	}
	stack := []item{{start, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(it.id, it.depth)
		for _, c := range a.Children(it.id) {
			stack = append(stack, item{c, it.depth + 1})
		}
	}
}
