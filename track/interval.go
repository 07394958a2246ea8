package track

import (
	"slices"
	"sort"
)

// interval is a half-open [start, end) span of occupied cells.
type interval struct {
	start uint32
	end   uint32
}

// less orders intervals lexicographically by (start, end). Zero-length
// regions may share a start offset with a neighbor, so start alone is
// not a total order.
func (iv interval) less(other interval) bool {
	if iv.start != other.start {
		return iv.start < other.start
	}
	return iv.end < other.end
}

// insertInterval places iv at its sorted position in the index.
func (t *Tracker) insertInterval(iv interval) {
	i := sort.Search(len(t.index), func(i int) bool {
		return !t.index[i].less(iv)
	})
	t.index = slices.Insert(t.index, i, iv)
}

// removeInterval deletes one entry equal to iv. Several zero-length
// regions may derive identical intervals; exactly one entry goes.
func (t *Tracker) removeInterval(iv interval) {
	i := sort.Search(len(t.index), func(i int) bool {
		return !t.index[i].less(iv)
	})
	if i < len(t.index) && t.index[i] == iv {
		t.index = slices.Delete(t.index, i, i+1)
	}
}
