package track

// FindSpace returns the lowest offset of a free contiguous gap of at
// least length cells, or ok=false if no such gap exists. The search is
// first-fit: it walks the occupied intervals in ascending start order
// and returns the first gap that is large enough, including the
// trailing space after the last interval. FindSpace never mutates
// state; a zero-length request trivially succeeds.
func (t *Tracker) FindSpace(length uint32) (uint32, bool) {
	var lastEnd uint32
	for _, iv := range t.index {
		// Non-overlap keeps iv.start >= lastEnd for sorted intervals.
		if iv.start-lastEnd >= length {
			return lastEnd, true
		}
		lastEnd = iv.end
	}
	if t.capacity-lastEnd >= length {
		return lastEnd, true
	}
	return 0, false
}
