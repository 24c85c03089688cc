package pipeline

import "strconv"

// idAllocator hands out unique activity ids within one run. Ids are the
// date+title slug; when two activities slug identically the repeats get a
// numeric suffix starting at -2.
type idAllocator struct {
	counts map[string]int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{counts: make(map[string]int)}
}

// allocate returns the id for the given base slug and whether it collided
// with an earlier allocation.
func (a *idAllocator) allocate(base string) (id string, collided bool) {
	a.counts[base]++
	n := a.counts[base]
	if n == 1 {
		return base, false
	}
	return base + "-" + strconv.Itoa(n), true
}
