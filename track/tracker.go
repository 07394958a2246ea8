package track

import "log/slog"

// Region describes one named allocation inside the tracked space.
type Region struct {
	Start  uint32
	Length uint32
}

// End returns the exclusive end offset of the region's interval.
func (r Region) End() uint32 { return r.Start + r.Length }

// Config carries optional construction settings for a Tracker.
type Config struct {
	// Logger receives one Info record per mutating operation.
	// nil disables tracing entirely.
	Logger *slog.Logger
}

// Tracker records the layout of named regions inside a space of fixed
// capacity. The zero value is not usable; construct with New.
type Tracker struct {
	capacity uint32
	log      *slog.Logger

	// regions is the region store: identifier -> (start, length).
	// Identifiers are opaque; no ordering semantics are implied.
	regions map[int32]Region

	// index mirrors regions as occupied intervals, sorted by (start, end).
	// Every mutation updates regions and index together.
	index []interval
}

// New creates a Tracker for a space of the given capacity. The capacity
// is fixed for the tracker's lifetime. cfg may be nil.
func New(capacity uint32, cfg *Config) *Tracker {
	t := &Tracker{
		capacity: capacity,
		regions:  make(map[int32]Region),
	}
	if cfg != nil {
		t.log = cfg.Logger
	}
	return t
}

// Capacity returns the fixed capacity of the tracked space.
func (t *Tracker) Capacity() uint32 { return t.capacity }

// Len returns the number of live regions.
func (t *Tracker) Len() int { return len(t.regions) }

// Add inserts a region at an explicit start offset. Validation order:
// duplicate identifier, bounds, then a linear overlap scan against all
// occupied intervals. The first failing check rejects with no state
// change. Adjacent (touching) regions are allowed.
func (t *Tracker) Add(id int32, start, length uint32) error {
	if _, ok := t.regions[id]; ok {
		t.trace("add rejected", "id", id, "reason", "duplicate id")
		return ErrDuplicateID
	}
	if length > t.capacity || start > t.capacity-length {
		t.trace("add rejected", "id", id, "start", start, "length", length,
			"reason", "out of bounds")
		return ErrOutOfBounds
	}
	end := start + length
	for _, iv := range t.index {
		if end <= iv.start || start >= iv.end {
			continue
		}
		t.trace("add rejected", "id", id, "start", start, "length", length,
			"reason", "collision")
		return ErrOverlap
	}

	t.regions[id] = Region{Start: start, Length: length}
	t.insertInterval(interval{start: start, end: end})
	t.trace("add", "id", id, "start", start, "length", length)
	return nil
}

// Remove erases a region by identifier. Removing an unknown identifier
// is a no-op; a caller wanting strict semantics should Get first.
func (t *Tracker) Remove(id int32) {
	r, ok := t.regions[id]
	if !ok {
		t.trace("remove missing", "id", id)
		return
	}
	t.removeInterval(interval{start: r.Start, end: r.End()})
	delete(t.regions, id)
	t.trace("remove", "id", id, "start", r.Start, "length", r.Length)
}

// Get returns the region for id, or ok=false if it is not live.
func (t *Tracker) Get(id int32) (Region, bool) {
	r, ok := t.regions[id]
	return r, ok
}

// All returns a copy of the full region store. Iteration order of the
// returned map carries no meaning.
func (t *Tracker) All() map[int32]Region {
	out := make(map[int32]Region, len(t.regions))
	for id, r := range t.regions {
		out[id] = r
	}
	return out
}

func (t *Tracker) trace(msg string, args ...any) {
	if t.log != nil {
		t.log.Info(msg, args...)
	}
}
