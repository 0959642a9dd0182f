// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"strings"

	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/matrix"
)

// Noise labels a point that belongs to no cluster.
const Noise = -1

// Sentinel errors for clusterer configuration and results.
var (
	// ErrBadEps indicates a non-positive DBSCAN radius.
	ErrBadEps = errors.Invalid("cluster: eps must be > 0")

	// ErrBadMinPts indicates a DBSCAN MinPts below 1.
	ErrBadMinPts = errors.Invalid("cluster: min_pts must be >= 1")

	// ErrBadThreshold indicates a negative single-linkage threshold.
	ErrBadThreshold = errors.Invalid("cluster: threshold must be >= 0")

	// ErrBadMinSize indicates a negative minimum cluster size.
	ErrBadMinSize = errors.Invalid("cluster: min_size must be >= 0")

	// ErrUnknownClusterer indicates ByName got an unsupported kind.
	ErrUnknownClusterer = errors.Invalid("cluster: unknown clusterer kind")

	// ErrBadResult indicates a clusterer returned labels that do not line up
	// with its input.
	ErrBadResult = errors.New("cluster: malformed result")
)

// Metric is the distance used by the built-in clusterers.
type Metric = matrix.Metric

// Clusterer partitions a point subset into disjoint clusters plus noise.
type Clusterer interface {
	Cluster(ctx context.Context, points [][]float64) (Result, error)
}

// Func adapts an ordinary function to the Clusterer interface.
type Func func(ctx context.Context, points [][]float64) (Result, error)

// Cluster calls f(ctx, points).
func (f Func) Cluster(ctx context.Context, points [][]float64) (Result, error) {
	return f(ctx, points)
}

// Result holds one label per input point.
type Result struct {
	Labels []int
}

// Check verifies that r labels exactly n points with values >= Noise.
func (r Result) Check(n int) error {
	if len(r.Labels) != n {
		return errors.Wrapf(ErrBadResult, "%d labels for %d points", len(r.Labels), n)
	}
	for i, l := range r.Labels {
		if l < Noise {
			return errors.Wrapf(ErrBadResult, "point %d has label %d", i, l)
		}
	}

	return nil
}

// Groups returns the clusters as ascending index lists, ordered by their
// smallest member. Noise points are omitted.
func (r Result) Groups() [][]int {
	byLabel := make(map[int]int)
	var groups [][]int
	for i, l := range r.Labels {
		if l == Noise {
			continue
		}
		g, ok := byLabel[l]
		if !ok {
			g = len(groups)
			byLabel[l] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	return groups
}

// NumClusters returns the number of distinct non-noise labels.
func (r Result) NumClusters() int {
	seen := make(map[int]struct{})
	for _, l := range r.Labels {
		if l != Noise {
			seen[l] = struct{}{}
		}
	}

	return len(seen)
}

// NoiseCount returns the number of points labelled Noise.
func (r Result) NoiseCount() int {
	n := 0
	for _, l := range r.Labels {
		if l == Noise {
			n++
		}
	}

	return n
}

// relabel maps arbitrary component roots to labels 0..k-1 in order of first
// appearance and drops components smaller than minSize to Noise.
func relabel(roots []int, minSize int) []int {
	size := make(map[int]int)
	for _, r := range roots {
		size[r]++
	}
	next := 0
	ids := make(map[int]int)
	out := make([]int, len(roots))
	for i, r := range roots {
		if size[r] < minSize {
			out[i] = Noise
			continue
		}
		id, ok := ids[r]
		if !ok {
			id = next
			ids[r] = id
			next++
		}
		out[i] = id
	}

	return out
}

// Trivial puts every point into a single cluster.
type Trivial struct{}

// Cluster labels every point 0.
func (Trivial) Cluster(ctx context.Context, points [][]float64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{Labels: make([]int, len(points))}, nil
}

func (Trivial) String() string { return KindTrivial }

// Clusterer kinds accepted by ByName.
const (
	KindDBSCAN        = "dbscan"
	KindSingleLinkage = "single_linkage"
	KindTrivial       = "trivial"
)

// Params carries the kind-specific settings ByName may need.
type Params struct {
	Eps       float64
	MinPts    int
	Threshold float64
	Metric    string
	MinSize   int
}

// ByName resolves and validates a clusterer by kind (case-insensitive).
// "" means dbscan.
func ByName(kind string, p Params) (Clusterer, error) {
	metric, err := matrix.MetricByName(p.Metric)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindDBSCAN:
		c := &DBSCAN{Eps: p.Eps, MinPts: p.MinPts, Metric: metric}
		if err = c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	case KindSingleLinkage, "single-linkage", "single":
		c := &SingleLinkage{Threshold: p.Threshold, MinSize: p.MinSize, Metric: metric}
		if err = c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	case KindTrivial:
		return Trivial{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownClusterer, "%q", kind)
	}
}
