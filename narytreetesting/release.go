package narytreetesting

import "testing"

// ReleaseCounter counts how many times each payload was released.
type ReleaseCounter struct {
	Counts map[string]int
}

func NewReleaseCounter() *ReleaseCounter {
	return &ReleaseCounter{Counts: make(map[string]int)}
}

func (r *ReleaseCounter) Release(v string) {
	r.Counts[v]++
}

func (r *ReleaseCounter) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// RequireEachOnce fails the test if any of values was not released exactly once.
func (r *ReleaseCounter) RequireEachOnce(t *testing.T, values ...string) {
	t.Helper()
	for _, v := range values {
		if n := r.Counts[v]; n != 1 {
			t.Fatalf("value %q released %d times, want 1", v, n)
		}
	}
}

// RequireNone fails the test if anything was released.
func (r *ReleaseCounter) RequireNone(t *testing.T) {
	t.Helper()
	if n := r.Total(); n != 0 {
		t.Fatalf("%d releases, want none: %v", n, r.Counts)
	}
}
