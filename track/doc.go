// Package track maintains the layout of named, non-overlapping regions
// inside a fixed-capacity linear address space.
//
// # Overview
//
// A Tracker records where variable-length records would live inside a
// fixed buffer. It never touches backing storage - it is pure
// bookkeeping: a region store mapping identifier to (start, length),
// and an interval index of occupied [start, end) spans kept sorted by
// start offset. Both structures are updated together by every mutation,
// so callers never observe them out of sync.
//
// # Operations
//
//   - Add(id, start, length): insert a region after validating
//     uniqueness, bounds, and non-overlap
//   - Remove(id): erase a region; unknown ids are a safe no-op
//   - Get(id) / All(): lookup and enumeration
//   - FindSpace(length): first-fit search for a free contiguous gap
//   - Usage(): occupied fraction of the tracked space
//   - Compact(): slide all regions down to offset 0, preserving their
//     relative order and lengths
//   - Stats(): occupancy and fragmentation counters
//
// # Usage Example
//
//	t := track.New(64, nil)
//
//	if err := t.Add(1, 0, 16); err != nil {
//	    return err
//	}
//
//	off, ok := t.FindSpace(8)
//	if ok {
//	    _ = t.Add(2, off, 8)
//	}
//
//	t.Compact()
//
// # Rejection Reasons
//
// Add reports each rejection reason as a distinct sentinel error, so
// callers can branch with errors.Is:
//
//   - ErrDuplicateID: the identifier is already live
//   - ErrOutOfBounds: start+length exceeds the tracked capacity
//   - ErrOverlap: the proposed interval intersects a live region
//
// A rejected Add leaves the tracker completely unchanged.
//
// # Tracing
//
// Construction accepts an optional *slog.Logger via Config. When set,
// every mutating operation emits one Info record naming the operation
// and its fields. A nil logger disables tracing entirely; no records
// are built and no formatting cost is paid.
//
// # Zero-Length Regions
//
// A region with length 0 is accepted as a valid degenerate entry. It
// occupies no cells and adds nothing to usage, but its position acts as
// a fence: an insertion whose interval strictly straddles it is
// rejected, while intervals touching it on either side are allowed. It
// keeps its identifier and zero length through compaction.
//
// # Thread Safety
//
// Tracker instances are not thread-safe. Callers must synchronize
// access externally, including reads, since Add and Compact mutate the
// same structures reads traverse.
package track
