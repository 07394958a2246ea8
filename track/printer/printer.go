// Package printer renders tracker state for debugging: a text map of
// the tracked space with occupancy rulers, or a JSON snapshot. Output
// is an observable convenience, not a correctness contract.
package printer

import (
	"io"

	"github.com/joshuapare/layoutkit/track"
)

const (
	DefaultFillRune   = '-'
	DefaultLabelEvery = 10
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the human-readable region map.
	FormatText Format = "text"

	// FormatJSON outputs a JSON snapshot.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// FillRune marks the tail cells of a region on the map line. The
	// first cell of a region always shows the identifier's last decimal
	// digit.
	// Default: '-'
	FillRune rune

	// ShowRuler includes the digit ruler and offset label lines under
	// the map (text format only).
	// Default: true
	ShowRuler bool

	// Color renders occupied cells with a terminal color. Cosmetic
	// only; never influences allocation decisions.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		FillRune:  DefaultFillRune,
		ShowRuler: true,
	}
}

// Printer renders one tracker to one writer.
type Printer struct {
	t    *track.Tracker
	w    io.Writer
	opts Options
}

// New creates a Printer for the given tracker and writer.
func New(t *track.Tracker, w io.Writer, opts Options) *Printer {
	if opts.FillRune == 0 {
		opts.FillRune = DefaultFillRune
	}
	return &Printer{t: t, w: w, opts: opts}
}

// Print renders the tracker in the configured format.
func (p *Printer) Print() error {
	if p.opts.Format == FormatJSON {
		return p.printJSON()
	}
	return p.printText()
}
