package peaks

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-peaks/dsp/extrema"
)

// Gap marks a scale at which a ridge has no position.
const Gap = -1

// RidgeState tells whether a ridge can still be extended.
type RidgeState uint8

const (
	// RidgeActive ridges take part in matching at finer scales.
	RidgeActive RidgeState = iota
	// RidgeDead ridges exceeded the gap threshold and keep their positions
	// unchanged from then on.
	RidgeDead
)

// String returns the state name.
func (s RidgeState) String() string {
	if s == RidgeDead {
		return "dead"
	}
	return "active"
}

// Ridge is the position of one candidate peak as a function of scale.
// Positions[i] is a trace index or Gap for scale i.
type Ridge struct {
	Positions []int
	State     RidgeState
}

// Len returns the number of scales at which the ridge has a position.
func (r Ridge) Len() int {
	n := 0
	for _, p := range r.Positions {
		if p != Gap {
			n++
		}
	}
	return n
}

// gapsAbove counts gaps at scales coarser than i.
func (r Ridge) gapsAbove(i int) int {
	n := 0
	for _, p := range r.Positions[i+1:] {
		if p == Gap {
			n++
		}
	}
	return n
}

// reference returns the position at scale i+1. A ridge with a gap there
// has no reference and cannot be extended at scale i.
func (r Ridge) reference(i int) (int, bool) {
	if i+1 >= len(r.Positions) || r.Positions[i+1] == Gap {
		return 0, false
	}
	return r.Positions[i+1], true
}

// RidgeSet stores ridges of a common scale count in creation order. The
// positions of all ridges share one growable backing slice.
type RidgeSet struct {
	scales    int
	positions []int
	states    []RidgeState
}

// NewRidgeSet returns an empty set for ridges spanning scales scales.
func NewRidgeSet(scales int) *RidgeSet {
	return &RidgeSet{scales: scales}
}

// Len returns the number of ridges.
func (s *RidgeSet) Len() int {
	return len(s.states)
}

// Scales returns the number of scales every ridge spans.
func (s *RidgeSet) Scales() int {
	return s.scales
}

// Ridge returns ridge j. Its Positions alias the set and are only valid
// until the next Append.
func (s *RidgeSet) Ridge(j int) Ridge {
	lo, hi := j*s.scales, (j+1)*s.scales
	return Ridge{Positions: s.positions[lo:hi:hi], State: s.states[j]}
}

// Append adds a copy of positions, which must have Scales() entries.
func (s *RidgeSet) Append(positions []int, state RidgeState) error {
	if len(positions) != s.scales {
		return fmt.Errorf("%w: ridge has %d scales, set has %d", ErrScaleMismatch, len(positions), s.scales)
	}
	s.positions = append(s.positions, positions...)
	s.states = append(s.states, state)
	return nil
}

// seed appends an active ridge with a single position at scale.
func (s *RidgeSet) seed(scale, pos int) {
	for i := 0; i < s.scales; i++ {
		if i == scale {
			s.positions = append(s.positions, pos)
		} else {
			s.positions = append(s.positions, Gap)
		}
	}
	s.states = append(s.states, RidgeActive)
}

// Matrix returns the positions as a Scales() x Len() matrix, one column per
// ridge.
func (s *RidgeSet) Matrix() [][]int {
	m := make([][]int, s.scales)
	for i := range m {
		m[i] = make([]int, s.Len())
		for j := range m[i] {
			m[i][j] = s.positions[j*s.scales+i]
		}
	}
	return m
}

// ExtremaFinder returns the ascending indices of the extrema of row that are
// at least minSeparation apart.
type ExtremaFinder func(row []float64, minSeparation int, mode extrema.Mode) ([]int, error)

// RidgeConfig controls ridge identification.
type RidgeConfig struct {
	// GapThreshold is the number of gaps a ridge may accumulate before it
	// stops growing. Auto uses a quarter of the scale count.
	GapThreshold int
	// Mode selects whether ridges follow maxima or minima.
	Mode extrema.Mode
	// Finder locates extrema per scale; nil uses extrema.Local.
	Finder ExtremaFinder
}

// DefaultRidgeConfig returns the configuration used by FindPeaks.
func DefaultRidgeConfig() RidgeConfig {
	return RidgeConfig{
		GapThreshold: Auto,
		Mode:         extrema.Maxima,
		Finder:       extrema.Local,
	}
}

// IdentifyRidges links extrema of the transform rows into ridges, working
// from the coarsest scale (last row) to the finest. Row i of coef belongs to
// windows[i].
//
// At every scale, each active ridge claims the nearest unclaimed extremum
// within windows[i]/4 of its position at scale i+1; a ridge with a gap at
// i+1 claims nothing. Ridges claim in creation order and equidistant extrema
// resolve to the lower index. Extrema left unclaimed start new ridges. A
// ridge with more than GapThreshold gaps at coarser scales, counting the
// scales before it was started, becomes dead.
func IdentifyRidges(coef *mat.Dense, windows []int, cfg RidgeConfig) (*RidgeSet, error) {
	scales, _ := coef.Dims()
	if err := validateWindows(windows, scales); err != nil {
		return nil, err
	}

	gapThreshold := cfg.GapThreshold
	if gapThreshold < 0 {
		gapThreshold = scales / 4
	}
	finder := cfg.Finder
	if finder == nil {
		finder = extrema.Local
	}

	ridges := NewRidgeSet(scales)
	for i := scales - 1; i >= 0; i-- {
		found, err := finder(coef.RawRowView(i), 2*windows[i], cfg.Mode)
		if err != nil {
			return nil, fmt.Errorf("peaks: extrema at scale %d: %w", windows[i], err)
		}
		candidates := slices.Clone(found)
		tolerance := windows[i] / 4

		for j := 0; j < ridges.Len(); j++ {
			if ridges.states[j] == RidgeDead {
				continue
			}
			r := ridges.Ridge(j)
			if r.gapsAbove(i) > gapThreshold {
				ridges.states[j] = RidgeDead
				continue
			}
			ref, ok := r.reference(i)
			if !ok {
				continue
			}

			best, bestDist := -1, 0
			for k, c := range candidates {
				if c == Gap {
					continue
				}
				d := c - ref
				if d < 0 {
					d = -d
				}
				if best < 0 || d < bestDist {
					best, bestDist = k, d
				}
			}
			if best >= 0 && bestDist <= tolerance {
				r.Positions[i] = candidates[best]
				candidates[best] = Gap
			}
		}

		for _, c := range candidates {
			if c != Gap {
				ridges.seed(i, c)
			}
		}
	}

	return ridges, nil
}

func validateWindows(windows []int, scales int) error {
	if len(windows) != scales {
		return fmt.Errorf("%w: %d windows for %d transform rows", ErrScaleMismatch, len(windows), scales)
	}
	for i, w := range windows {
		if w <= 0 || (i > 0 && w < windows[i-1]) {
			return fmt.Errorf("%w: windows[%d] = %d", ErrInvalidWindows, i, w)
		}
	}
	return nil
}
