package track

import "errors"

var (
	// ErrDuplicateID indicates an Add with an identifier that is already live.
	ErrDuplicateID = errors.New("track: duplicate region id")

	// ErrOutOfBounds indicates a region whose interval exceeds the tracked capacity.
	ErrOutOfBounds = errors.New("track: region exceeds capacity")

	// ErrOverlap indicates a region that collides with an existing occupied interval.
	ErrOverlap = errors.New("track: region collides with an existing interval")
)
