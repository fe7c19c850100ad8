package wildfire

import (
	"fmt"

	"wildfire/internal/core"
)

// Status is the state of a single cell.
type Status uint8

const (
	// Green is unburnt fuel.
	Green Status = iota
	// Burning cells are on fire for exactly one step.
	Burning
	// Burnt cells are consumed and never change again.
	Burnt
)

func (s Status) String() string {
	switch s {
	case Green:
		return "green"
	case Burning:
		return "burning"
	case Burnt:
		return "burnt"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Snapshot maps every cell of a grid to its status at one step. Snapshots are
// never mutated once handed out; Advance always returns a fresh one.
type Snapshot struct {
	n     int
	cells []Status
}

// NewSnapshot builds the step-0 state: seeds burning, everything else green.
// Repeated seeds collapse into a single burning cell.
func NewSnapshot(g *core.Grid, seeds []core.Coord) (*Snapshot, error) {
	if g == nil {
		return nil, fmt.Errorf("nil grid: %w", core.ErrInvalidParameter)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("empty seed set, no fire would start: %w", core.ErrInvalidParameter)
	}
	s := &Snapshot{n: g.N(), cells: make([]Status, g.Len())}
	for _, c := range seeds {
		if !g.Contains(c) {
			return nil, fmt.Errorf("seed %v outside %dx%d grid: %w", c, g.N(), g.N(), core.ErrInvalidParameter)
		}
		s.cells[g.Index(c)] = Burning
	}
	return s, nil
}

// Size returns the side length of the grid the snapshot covers.
func (s *Snapshot) Size() int { return s.n }

// At returns the status of c. It panics when c lies outside the snapshot.
func (s *Snapshot) At(c core.Coord) Status {
	if c.Row < 0 || c.Row >= s.n || c.Col < 0 || c.Col >= s.n {
		panic(fmt.Sprintf("wildfire: coordinate %v outside %dx%d snapshot", c, s.n, s.n))
	}
	return s.cells[c.Row*s.n+c.Col]
}

// Count returns how many cells currently have status st.
func (s *Snapshot) Count(st Status) int {
	count := 0
	for _, v := range s.cells {
		if v == st {
			count++
		}
	}
	return count
}

// BurntFraction returns count(burnt)/n².
func (s *Snapshot) BurntFraction() float64 {
	if len(s.cells) == 0 {
		return 0
	}
	return float64(s.Count(Burnt)) / float64(len(s.cells))
}

// HasBurning reports whether any cell is still on fire.
func (s *Snapshot) HasBurning() bool {
	for _, v := range s.cells {
		if v == Burning {
			return true
		}
	}
	return false
}

// Cells returns a row-major copy of the statuses encoded as palette indices.
func (s *Snapshot) Cells() []uint8 {
	out := make([]uint8, len(s.cells))
	for i, v := range s.cells {
		out[i] = uint8(v)
	}
	return out
}

// Equal reports whether both snapshots cover the same grid with identical
// statuses.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.n != o.n || len(s.cells) != len(o.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (s *Snapshot) clone() *Snapshot {
	return &Snapshot{n: s.n, cells: append([]Status(nil), s.cells...)}
}

// Advance computes the next step from s.
//
// Burning cells become burnt. For every burning cell, in ascending row-major
// order, each neighbour that is green in s receives one draw from rng and
// ignites when the draw is below p. A green cell next to k burning cells gets
// k independent draws and ignites if any succeeds. All other cells keep their
// status. A snapshot without burning cells is returned unchanged and consumes
// no draws.
func Advance(s *Snapshot, g *core.Grid, p float64, rng core.Source) (*Snapshot, error) {
	if err := checkStep(s, g, p, rng); err != nil {
		return nil, err
	}
	return advance(s, g, p, rng), nil
}

func advance(s *Snapshot, g *core.Grid, p float64, rng core.Source) *Snapshot {
	next := s.clone()
	for idx, st := range s.cells {
		if st != Burning {
			continue
		}
		next.cells[idx] = Burnt
		for _, nb := range g.NeighborIndices(idx) {
			if s.cells[nb] != Green {
				continue
			}
			if rng.Float64() < p {
				next.cells[nb] = Burning
			}
		}
	}
	return next
}

func checkStep(s *Snapshot, g *core.Grid, p float64, rng core.Source) error {
	if s == nil || g == nil {
		return fmt.Errorf("nil snapshot or grid: %w", core.ErrInvalidParameter)
	}
	if s.n != g.N() || len(s.cells) != g.Len() {
		return fmt.Errorf("snapshot size %d does not match grid size %d: %w", s.n, g.N(), core.ErrInvalidParameter)
	}
	if rng == nil {
		return fmt.Errorf("nil random source: %w", core.ErrInvalidParameter)
	}
	return checkProbability(p)
}

func checkProbability(p float64) error {
	// NaN fails both comparisons, so test for the valid range instead.
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("spread probability %v outside [0,1]: %w", p, core.ErrInvalidParameter)
	}
	return nil
}
