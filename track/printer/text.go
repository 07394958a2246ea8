package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var occupiedColor = color.New(color.FgCyan)

// printText renders the region listing, the map line, and (optionally)
// the rulers:
//
//	Regions: {1: (start=0, length=3), 2: (start=5, length=2)}
//	1--  2-
//	0123456789
//	0
func (p *Printer) printText() error {
	regions := p.t.All()

	ids := make([]int32, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	// Sorting by id keeps the listing stable; ids carry no other meaning.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	b.WriteString("Regions: {")
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		r := regions[id]
		fmt.Fprintf(&b, "%d: (start=%d, length=%d)", id, r.Start, r.Length)
	}
	b.WriteString("}\n")

	capacity := int(p.t.Capacity())
	cells := make([]rune, capacity)
	occupied := make([]bool, capacity)
	for i := range cells {
		cells[i] = ' '
	}
	for id, r := range regions {
		if r.Length == 0 {
			continue
		}
		cells[r.Start] = idDigit(id)
		occupied[r.Start] = true
		for i := r.Start + 1; i < r.End(); i++ {
			cells[i] = p.opts.FillRune
			occupied[i] = true
		}
	}
	b.WriteString(p.renderCells(cells, occupied))
	b.WriteByte('\n')

	if p.opts.ShowRuler {
		for i := 0; i < capacity; i++ {
			b.WriteByte(byte('0' + i%10))
		}
		b.WriteByte('\n')
		for i := 0; i < capacity; i += DefaultLabelEvery {
			label := fmt.Sprintf("%-*d", DefaultLabelEvery, i)
			if remaining := capacity - i; remaining < len(label) {
				label = label[:remaining]
			}
			b.WriteString(label)
		}
		b.WriteByte('\n')
	}

	_, err := fmt.Fprint(p.w, b.String())
	return err
}

// renderCells emits the map line, coloring runs of occupied cells when
// enabled.
func (p *Printer) renderCells(cells []rune, occupied []bool) string {
	if !p.opts.Color {
		return string(cells)
	}
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && occupied[j] == occupied[i] {
			j++
		}
		run := string(cells[i:j])
		if occupied[i] {
			run = occupiedColor.Sprint(run)
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}

// idDigit returns the identifier's least-significant decimal digit.
// Identifiers are opaque and may be negative.
func idDigit(id int32) rune {
	d := id % 10
	if d < 0 {
		d = -d
	}
	return rune('0' + d)
}
