// SPDX-License-Identifier: MIT

package cover

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvmapper/errors"
)

// Region is a closed axis-aligned hyperrectangle in filter space.
type Region struct {
	// ID is stable for a given cover configuration and input range.
	ID int

	// Index holds the per-dimension interval index of this region.
	Index []int

	// Lo and Hi are the closed bounds, one entry per filter dimension.
	Lo, Hi []float64
}

// Dim returns the filter dimension of r.
func (r Region) Dim() int { return len(r.Lo) }

// Contains reports whether v lies inside r's closed bounds.
// A v of the wrong length is never contained.
func (r Region) Contains(v []float64) bool {
	if len(v) != len(r.Lo) {
		return false
	}
	for d, x := range v {
		if x < r.Lo[d] || x > r.Hi[d] {
			return false
		}
	}

	return true
}

// String renders r as "#id[lo,hi]x[lo,hi]".
func (r Region) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d", r.ID)
	for d := range r.Lo {
		if d > 0 {
			sb.WriteString("x")
		}
		fmt.Fprintf(&sb, "[%g,%g]", r.Lo[d], r.Hi[d])
	}

	return sb.String()
}

// Overlaps reports whether the closed bounds of a and b intersect.
// Touching boundaries count as overlap.
func Overlaps(a, b Region) bool {
	if len(a.Lo) != len(b.Lo) {
		return false
	}
	for d := range a.Lo {
		if a.Lo[d] > b.Hi[d] || b.Lo[d] > a.Hi[d] {
			return false
		}
	}

	return true
}

// Members returns the ascending indices of values lying inside r.
// Complexity: O(N·m).
func Members(r Region, values [][]float64) []int {
	var out []int
	for i, v := range values {
		if r.Contains(v) {
			out = append(out, i)
		}
	}

	return out
}

// Membership maps region IDs to the ascending point indices inside each region.
// The zero value is empty and safe to read.
type Membership struct {
	ids     []int
	members map[int][]int
}

// NewMembership builds a Membership from a region → members map.
// Member lists are copied and sorted ascending.
func NewMembership(m map[int][]int) Membership {
	out := Membership{members: make(map[int][]int, len(m))}
	for id, mem := range m {
		cp := append([]int(nil), mem...)
		sort.Ints(cp)
		out.members[id] = cp
		out.ids = append(out.ids, id)
	}
	sort.Ints(out.ids)

	return out
}

// RegionIDs returns every region ID, ascending, including empty regions.
func (m Membership) RegionIDs() []int { return append([]int(nil), m.ids...) }

// Members returns the point indices of region id (nil if unknown or empty).
// The returned slice must not be modified.
func (m Membership) Members(id int) []int { return m.members[id] }

// NonEmpty returns the ascending IDs of regions with at least one member.
func (m Membership) NonEmpty() []int {
	out := make([]int, 0, len(m.ids))
	for _, id := range m.ids {
		if len(m.members[id]) > 0 {
			out = append(out, id)
		}
	}

	return out
}

// Len returns the number of regions known to m.
func (m Membership) Len() int { return len(m.ids) }

// Uncovered returns the ascending indices in [0, n) that belong to no region.
// It is empty for any cover honouring the covering invariant.
func (m Membership) Uncovered(n int) []int {
	seen := make([]bool, n)
	for _, mem := range m.members {
		for _, i := range mem {
			if i >= 0 && i < n {
				seen[i] = true
			}
		}
	}
	var out []int
	for i, ok := range seen {
		if !ok {
			out = append(out, i)
		}
	}

	return out
}

// Scan assigns values to regions by testing every (point, region) pair.
// It works for any set of regions. Complexity: O(N·R·m).
func Scan(regions []Region, values [][]float64) (Membership, error) {
	m, err := checkValues(values)
	if err != nil {
		return Membership{}, err
	}
	members := make(map[int][]int, len(regions))
	for _, r := range regions {
		if r.Dim() != m {
			return Membership{}, errors.Wrapf(ErrDimension, "region %d has dimension %d, values %d", r.ID, r.Dim(), m)
		}
		members[r.ID] = Members(r, values)
	}

	return NewMembership(members), nil
}
