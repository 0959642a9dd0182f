// SPDX-License-Identifier: MIT

package cover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmapper/errors"
)

// Cover builds regions over filter values and assigns points to them.
type Cover interface {
	// Build returns regions whose union contains every value.
	Build(values [][]float64) ([]Region, error)

	// Assign maps every region ID to the ascending indices of values inside it.
	Assign(regions []Region, values [][]float64) (Membership, error)
}

// Defaults used by NewCubical and the mapper pipeline.
const (
	DefaultIntervals = 10
	DefaultOverlap   = 0.1
)

// MaxRegions caps the Cartesian product size of a cubical cover.
const MaxRegions = 1 << 20

// Cubical is the uniform overlapping hypercube cover.
type Cubical struct {
	// NIntervals is the number of base intervals per dimension (>= 1).
	NIntervals int

	// Overlap is the fraction of a base width shared by neighbours, in [0,1).
	Overlap float64

	// Padding widens each dimension's range by Padding·span at both ends (>= 0).
	Padding float64

	// PerDim, when set, overrides NIntervals per filter dimension.
	PerDim []int
}

var _ Cover = (*Cubical)(nil)

// Option customizes a Cubical built by NewCubical.
type Option func(*Cubical)

// WithPadding widens every dimension's range by frac·span at both ends.
func WithPadding(frac float64) Option {
	return func(c *Cubical) { c.Padding = frac }
}

// WithPerDimIntervals sets an interval count per filter dimension.
func WithPerDimIntervals(counts ...int) Option {
	return func(c *Cubical) { c.PerDim = append([]int(nil), counts...) }
}

// NewCubical returns a validated Cubical cover.
func NewCubical(n int, overlap float64, opts ...Option) (*Cubical, error) {
	c := &Cubical{NIntervals: n, Overlap: overlap}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the parameters that do not depend on the input.
func (c *Cubical) Validate() error {
	if c.NIntervals < 1 {
		return errors.Wrapf(ErrBadIntervals, "n=%d", c.NIntervals)
	}
	for d, n := range c.PerDim {
		if n < 1 {
			return errors.Wrapf(ErrBadIntervals, "dimension %d: n=%d", d, n)
		}
	}
	if c.Overlap < 0 || c.Overlap >= 1 || math.IsNaN(c.Overlap) {
		return errors.Wrapf(ErrBadOverlap, "overlap=%g", c.Overlap)
	}
	if c.Padding < 0 || math.IsNaN(c.Padding) || math.IsInf(c.Padding, 0) {
		return errors.Wrapf(ErrBadPadding, "padding=%g", c.Padding)
	}

	return nil
}

// String describes the cover for logs.
func (c *Cubical) String() string {
	if len(c.PerDim) > 0 {
		return fmt.Sprintf("cubical(n=%v, overlap=%g, padding=%g)", c.PerDim, c.Overlap, c.Padding)
	}

	return fmt.Sprintf("cubical(n=%d, overlap=%g, padding=%g)", c.NIntervals, c.Overlap, c.Padding)
}

// interval is a closed 1-D bound.
type interval struct{ lo, hi float64 }

// counts returns the interval count for each of m dimensions.
func (c *Cubical) counts(m int) ([]int, error) {
	if len(c.PerDim) == 0 {
		out := make([]int, m)
		for d := range out {
			out[d] = c.NIntervals
		}
		return out, nil
	}
	if len(c.PerDim) != m {
		return nil, errors.Wrapf(ErrBadIntervals, "%d per-dimension counts for %d dimensions", len(c.PerDim), m)
	}

	return append([]int(nil), c.PerDim...), nil
}

// axis builds the n expanded intervals of one dimension over [lo, hi].
// Ranges wider than MaxFloat64 are split in halves so every edge stays finite.
func (c *Cubical) axis(lo, hi float64, n int) []interval {
	span := hi - lo
	if span == 0 {
		// degenerate range: unit width centred on the single value
		lo, hi, span = lo-0.5, hi+0.5, 1
	} else if c.Padding > 0 {
		lo = clampFinite(lo - c.Padding*span)
		hi = clampFinite(hi + c.Padding*span)
		span = hi - lo
	}

	// Stage 1: shared base edges, last pinned to hi
	edges := make([]float64, n+1)
	var ext float64
	if math.IsInf(span, 0) {
		half := hi/2/float64(n) - lo/2/float64(n)
		for k := 0; k < n; k++ {
			step := float64(k) * half
			edges[k] = lo + step + step
		}
		ext = c.Overlap * half
	} else {
		w := span / float64(n)
		for k := 0; k < n; k++ {
			edges[k] = lo + float64(k)*w
		}
		ext = c.Overlap * w / 2
	}
	edges[n] = hi

	// Stage 2: symmetric expansion by half the shared band
	out := make([]interval, n)
	for k := 0; k < n; k++ {
		out[k] = interval{lo: edges[k] - ext, hi: edges[k+1] + ext}
	}

	return out
}

// clampFinite maps ±Inf to ±MaxFloat64.
func clampFinite(x float64) float64 {
	return math.Max(-math.MaxFloat64, math.Min(math.MaxFloat64, x))
}

// Build computes the per-dimension intervals and their Cartesian product.
// Returns ErrEmptyInput, ErrDimension, ErrNonFinite, ErrBadIntervals,
// ErrBadOverlap, ErrBadPadding or ErrTooManyRegions.
func (c *Cubical) Build(values [][]float64) ([]Region, error) {
	// Stage 1: validate
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, err := checkValues(values)
	if err != nil {
		return nil, err
	}
	counts, err := c.counts(m)
	if err != nil {
		return nil, err
	}
	total := 1
	for _, n := range counts {
		if total > MaxRegions/n {
			return nil, errors.Wrapf(ErrTooManyRegions, "counts %v exceed %d", counts, MaxRegions)
		}
		total *= n
	}

	// Stage 2: per-dimension range and intervals
	axes := make([][]interval, m)
	for d := 0; d < m; d++ {
		lo, hi := values[0][d], values[0][d]
		for _, v := range values[1:] {
			lo = math.Min(lo, v[d])
			hi = math.Max(hi, v[d])
		}
		axes[d] = c.axis(lo, hi, counts[d])
	}

	// Stage 3: Cartesian product, row-major with last dimension fastest
	regions := make([]Region, total)
	idx := make([]int, m)
	for id := 0; id < total; id++ {
		r := Region{
			ID:    id,
			Index: append([]int(nil), idx...),
			Lo:    make([]float64, m),
			Hi:    make([]float64, m),
		}
		for d, k := range idx {
			r.Lo[d] = axes[d][k].lo
			r.Hi[d] = axes[d][k].hi
		}
		regions[id] = r
		advance(idx, counts)
	}

	return regions, nil
}

// Assign maps values to regions produced by Build. When regions form a full
// row-major grid it intersects per-dimension interval hits instead of scanning
// every region; otherwise it falls back to Scan.
func (c *Cubical) Assign(regions []Region, values [][]float64) (Membership, error) {
	m, err := checkValues(values)
	if err != nil {
		return Membership{}, err
	}
	axes, counts, ok := gridOf(regions, m)
	if !ok {
		return Scan(regions, values)
	}

	ids := make([]int, len(regions))
	members := make(map[int][]int, len(regions))
	for pos, r := range regions {
		ids[pos] = r.ID
		members[r.ID] = nil
	}
	hits := make([][]int, m)
	for i, v := range values {
		// Stage 1: per-dimension interval hits
		empty := false
		for d := 0; d < m; d++ {
			hits[d] = hits[d][:0]
			for k, iv := range axes[d] {
				if v[d] >= iv.lo && v[d] <= iv.hi {
					hits[d] = append(hits[d], k)
				}
			}
			if len(hits[d]) == 0 {
				empty = true
				break
			}
		}
		if empty {
			continue
		}

		// Stage 2: product of hits → region IDs (ascending)
		pos := make([]int, m)
		for {
			id := 0
			for d := 0; d < m; d++ {
				id = id*counts[d] + hits[d][pos[d]]
			}
			members[id] = append(members[id], i)
			if !advanceHits(pos, hits) {
				break
			}
		}
	}

	return Membership{ids: ids, members: members}, nil
}

// gridOf recovers per-dimension intervals from a full row-major grid of regions.
func gridOf(regions []Region, m int) ([][]interval, []int, bool) {
	if len(regions) == 0 {
		return nil, nil, false
	}
	counts := make([]int, m)
	for _, r := range regions {
		if r.Dim() != m || len(r.Index) != m {
			return nil, nil, false
		}
		for d, k := range r.Index {
			if k < 0 {
				return nil, nil, false
			}
			if k+1 > counts[d] {
				counts[d] = k + 1
			}
		}
	}
	total := 1
	for _, n := range counts {
		total *= n
	}
	if total != len(regions) {
		return nil, nil, false
	}
	axes := make([][]interval, m)
	for d := range axes {
		axes[d] = make([]interval, counts[d])
	}
	for pos, r := range regions {
		id := 0
		for d, k := range r.Index {
			id = id*counts[d] + k
			axes[d][k] = interval{lo: r.Lo[d], hi: r.Hi[d]}
		}
		if id != r.ID || id != pos {
			return nil, nil, false
		}
	}

	return axes, counts, true
}

// checkValues validates a non-empty, rectangular, finite value set and
// returns its dimension.
func checkValues(values [][]float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	m := len(values[0])
	if m == 0 {
		return 0, errors.Wrap(ErrDimension, "zero-length filter values")
	}
	for i, v := range values {
		if len(v) != m {
			return 0, errors.Wrapf(ErrDimension, "value %d has %d components, want %d", i, len(v), m)
		}
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, errors.Wrapf(ErrNonFinite, "value %d", i)
			}
		}
	}

	return m, nil
}

// advance increments a mixed-radix counter, last digit fastest.
func advance(idx, counts []int) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < counts[d] {
			return
		}
		idx[d] = 0
	}
}

// advanceHits steps pos over the product of hit lists; false when exhausted.
func advanceHits(pos []int, hits [][]int) bool {
	for d := len(pos) - 1; d >= 0; d-- {
		pos[d]++
		if pos[d] < len(hits[d]) {
			return true
		}
		pos[d] = 0
	}

	return false
}
