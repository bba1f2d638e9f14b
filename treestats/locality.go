package treestats

import (
	"github.com/forestrie/go-narytree/arena"
)

const (
	// localityScale is the id distance at which an edge scores 0.5.
	localityScale = 10.0

	CacheLineBytes = 64
)

// LocalityScore returns the mean, over all parent to child edges, of
// 1/(1+|child-parent|/10). It is 1.0 for a tree without edges.
func LocalityScore[V any](a *arena.Arena[V]) float64 {
	var score float64
	edges := 0
	a.Each(func(id arena.ID) bool {
		for _, c := range a.Children(id) {
			d := float64(c) - float64(id)
			if d < 0 {
				d = -d
			}
			score += 1.0 / (1.0 + d/localityScale)
			edges++
		}
		return true
	})
	if edges == 0 {
		return 1.0
	}
	return score / float64(edges)
}

type LocalityStats struct {
	TotalNodes int
	MaxDepth   int
	// LocalityScore is in (0,1], higher means children sit closer to their
	// parent in id space.
	LocalityScore float64
	// CacheLineEfficiency is the number of payload slots per cache line.
	CacheLineEfficiency int
	CompressionRatio    float64
	MemoryUsageBytes    uint64
}

func Locality[V any](a *arena.Arena[V]) LocalityStats {
	return LocalityStats{
		TotalNodes:          a.Len(),
		MaxDepth:            MaxDepth(a),
		LocalityScore:       LocalityScore(a),
		CacheLineEfficiency: CacheLineEfficiency[V](),
		CompressionRatio:    CompressionRatio(a),
		MemoryUsageBytes:    MemoryUsage(a),
	}
}

// CacheLineEfficiency returns how many payload slots of type V share a cache
// line, at least 1.
func CacheLineEfficiency[V any]() int {
	size := arena.ValueBytes[V]()
	if size == 0 {
		return CacheLineBytes
	}
	return max(1, int(CacheLineBytes/size))
}
