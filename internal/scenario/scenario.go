// Package scenario loads and replays declarative tracker scenarios: a
// capacity plus an ordered list of operations, expressed in YAML. The
// CLI uses scenarios to drive a tracker reproducibly; the tracker
// itself knows nothing about them.
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/layoutkit/track"
)

// Operation names accepted in scenario files.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpFind    = "find"
	OpCompact = "compact"
)

// Op is one step of a scenario.
type Op struct {
	Op     string `yaml:"op"`
	ID     int32  `yaml:"id"`
	Start  uint32 `yaml:"start"`
	Length uint32 `yaml:"length"`
}

// Scenario is a capacity plus an ordered list of operations.
type Scenario struct {
	Capacity uint32 `yaml:"capacity"`
	Ops      []Op   `yaml:"ops"`
}

// Result records the outcome of one replayed operation.
type Result struct {
	Op Op

	// Err is the rejection for a failed add, nil otherwise.
	Err error

	// Offset and Found report the outcome of a find operation.
	Offset uint32
	Found  bool
}

// Load parses and validates a scenario.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if s.Capacity == 0 {
		return nil, fmt.Errorf("scenario: capacity must be positive")
	}
	for i, op := range s.Ops {
		switch op.Op {
		case OpAdd, OpRemove, OpFind, OpCompact:
		default:
			return nil, fmt.Errorf("scenario: op %d: unknown operation %q", i, op.Op)
		}
	}
	return &s, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Run replays the scenario against a fresh tracker and returns the
// tracker's final state along with per-operation outcomes. Rejected
// adds are recorded, not fatal; the replay always completes.
func (s *Scenario) Run(cfg *track.Config) (*track.Tracker, []Result) {
	t := track.New(s.Capacity, cfg)
	results := make([]Result, 0, len(s.Ops))
	for _, op := range s.Ops {
		res := Result{Op: op}
		switch op.Op {
		case OpAdd:
			res.Err = t.Add(op.ID, op.Start, op.Length)
		case OpRemove:
			t.Remove(op.ID)
		case OpFind:
			res.Offset, res.Found = t.FindSpace(op.Length)
		case OpCompact:
			t.Compact()
		}
		results = append(results, res)
	}
	return t, results
}
