package narytreetesting

import (
	"fmt"
	"math/rand"
)

// Shape describes a tree as a parent list in creation order: Shape[0] is the
// root (parent -1) and every other entry names an earlier node. Building a
// tree by walking the list in order only ever adds children to existing
// nodes, which is the only way the engine allows trees to grow.
type Shape []int

// Chain is a single path of n nodes, the worst case for depth.
func Chain(n int) Shape {
	s := make(Shape, n)
	for i := range s {
		s[i] = i - 1
	}
	return s
}

// Star is a root with n-1 leaf children.
func Star(n int) Shape {
	s := make(Shape, n)
	if n > 0 {
		s[0] = -1
	}
	return s
}

// RoundRobin hangs nodes under the first fanout children of the root in turn,
// producing fanout chains of similar length below a single root.
func RoundRobin(n int, fanout int) Shape {
	s := make(Shape, n)
	if n == 0 {
		return s
	}
	s[0] = -1
	last := make([]int, fanout)
	for i := 1; i < n; i++ {
		lane := (i - 1) % fanout
		if i <= fanout {
			s[i] = 0
		} else {
			s[i] = last[lane]
		}
		last[lane] = i
	}
	return s
}

// Random attaches each node to a uniformly chosen earlier node. The seed is
// fixed by callers so the generated shape is the same from run to run.
func Random(seed int64, n int) Shape {
	rng := rand.New(rand.NewSource(seed))
	s := make(Shape, n)
	if n == 0 {
		return s
	}
	s[0] = -1
	for i := 1; i < n; i++ {
		s[i] = rng.Intn(i)
	}
	return s
}

// Labels returns n distinct payloads "n0", "n1", ...
func Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("n%d", i)
	}
	return out
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (s Shape) Depth() int {
	depth := make([]int, len(s))
	deepest := 0
	for i, p := range s {
		if p < 0 {
			depth[i] = 1
		} else {
			depth[i] = depth[p] + 1
		}
		if depth[i] > deepest {
			deepest = depth[i]
		}
	}
	return deepest
}

// Children returns the child lists implied by the shape, in creation order.
func (s Shape) Children() [][]int {
	kids := make([][]int, len(s))
	for i, p := range s {
		if p >= 0 {
			kids[p] = append(kids[p], i)
		}
	}
	return kids
}

// Preorder returns node indices in depth-first preorder.
func (s Shape) Preorder() []int {
	if len(s) == 0 {
		return nil
	}
	kids := s.Children()
	out := make([]int, 0, len(s))
	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for i := len(kids[cur]) - 1; i >= 0; i-- {
			stack = append(stack, kids[cur][i])
		}
	}
	return out
}
