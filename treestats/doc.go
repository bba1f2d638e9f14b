// Package treestats computes size, shape, memory and locality metrics of an
// arena tree on demand. Nothing is cached: every call walks the arena, so
// results always describe its current layout.
//
// Depths count nodes, a lone root has depth 1 and an empty tree depth 0.
package treestats
