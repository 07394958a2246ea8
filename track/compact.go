package track

import "sort"

// Compact reassigns all live regions contiguous offsets starting at 0,
// in ascending order of their current offset. Lengths and identifiers
// are unchanged, relative spatial order is preserved, and the interval
// index is rebuilt to match. Compacting an already-compact tracker is a
// no-op, so the operation is deterministic and idempotent.
func (t *Tracker) Compact() {
	ids := make([]int32, 0, len(t.regions))
	for id := range t.regions {
		ids = append(ids, id)
	}
	// Map iteration order is unspecified; sort explicitly so the result
	// never depends on it. Zero-length regions can share a start offset
	// with a neighbor, so break ties by length, then id.
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := t.regions[ids[i]], t.regions[ids[j]]
		if ri.Start != rj.Start {
			return ri.Start < rj.Start
		}
		if ri.Length != rj.Length {
			return ri.Length < rj.Length
		}
		return ids[i] < ids[j]
	})

	t.index = t.index[:0]
	var next uint32
	for _, id := range ids {
		r := t.regions[id]
		r.Start = next
		t.regions[id] = r
		t.index = append(t.index, interval{start: next, end: next + r.Length})
		next += r.Length
	}
	t.trace("compact", "regions", len(ids), "span", next)
}
