package printer

import (
	"encoding/json"
	"sort"
)

// snapshot is the JSON shape of a tracker's state.
type snapshot struct {
	Capacity uint32           `json:"capacity"`
	Usage    float64          `json:"usage"`
	Regions  []snapshotRegion `json:"regions"`
}

type snapshotRegion struct {
	ID     int32  `json:"id"`
	Start  uint32 `json:"start"`
	Length uint32 `json:"length"`
}

func (p *Printer) printJSON() error {
	regions := p.t.All()

	s := snapshot{
		Capacity: p.t.Capacity(),
		Usage:    p.t.Usage(),
		Regions:  make([]snapshotRegion, 0, len(regions)),
	}
	for id, r := range regions {
		s.Regions = append(s.Regions, snapshotRegion{ID: id, Start: r.Start, Length: r.Length})
	}
	sort.Slice(s.Regions, func(i, j int) bool { return s.Regions[i].ID < s.Regions[j].ID })

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
