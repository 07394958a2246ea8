package track

// Usage returns the occupied fraction of the tracked space, in [0, 1].
// Callers wanting a percentage must scale by 100 themselves. A tracker
// with capacity 0 reports 0.
func (t *Tracker) Usage() float64 {
	if t.capacity == 0 {
		return 0
	}
	var used uint64
	for _, r := range t.regions {
		used += uint64(r.Length)
	}
	return float64(used) / float64(t.capacity)
}

// Stats holds occupancy and fragmentation counters for a Tracker.
type Stats struct {
	Regions    int    // live region count
	Used       uint64 // cells covered by regions
	Free       uint64 // cells not covered by any region
	Gaps       int    // free gaps of nonzero size, trailing space included
	LargestGap uint32 // size of the largest free gap

	// Fragmentation is 1 - LargestGap/Free: 0 when all free space is
	// one contiguous gap (or there is none), approaching 1 as free
	// space splinters.
	Fragmentation float64
}

// Stats walks the interval index once and returns current counters.
func (t *Tracker) Stats() Stats {
	s := Stats{Regions: len(t.regions)}
	for _, r := range t.regions {
		s.Used += uint64(r.Length)
	}
	s.Free = uint64(t.capacity) - s.Used

	var lastEnd uint32
	note := func(gap uint32) {
		if gap == 0 {
			return
		}
		s.Gaps++
		if gap > s.LargestGap {
			s.LargestGap = gap
		}
	}
	for _, iv := range t.index {
		note(iv.start - lastEnd)
		lastEnd = iv.end
	}
	note(t.capacity - lastEnd)

	if s.Free > 0 {
		s.Fragmentation = 1 - float64(s.LargestGap)/float64(s.Free)
	}
	return s
}
