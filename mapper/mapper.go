// SPDX-License-Identifier: MIT

package mapper

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmapper/cluster"
	"github.com/katalvlaran/lvmapper/core"
	"github.com/katalvlaran/lvmapper/cover"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/filter"
	"github.com/katalvlaran/lvmapper/pointcloud"
)

// Mapper holds a validated pipeline configuration. It is immutable after New
// and safe for concurrent Build calls.
type Mapper struct {
	filter    filter.Filter
	cover     cover.Cover
	clusterer cluster.Clusterer
	workers   int
	log       *zap.Logger
	prune     bool
	minSize   int

	// internal error recorded during option parsing
	err error
}

// validator is implemented by capabilities that can check their own parameters.
type validator interface {
	Validate() error
}

// New applies opts over the defaults and validates the result.
// Returns an ErrInvalidConfiguration-class error on any bad option or
// capability parameter.
func New(opts ...Option) (*Mapper, error) {
	m := defaults()
	for _, opt := range opts {
		opt(m)
		if m.err != nil {
			return nil, m.err
		}
	}
	if m.workers == 0 {
		m.workers = runtime.GOMAXPROCS(0)
	}
	for _, c := range []interface{}{m.filter, m.cover, m.clusterer} {
		if v, ok := c.(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Workers returns the effective worker bound.
func (m *Mapper) Workers() int { return m.workers }

// Describe returns a flat, printable summary of the configuration.
func (m *Mapper) Describe() map[string]string {
	return map[string]string{
		"filter":           fmt.Sprint(m.filter),
		"cover":            fmt.Sprint(m.cover),
		"clusterer":        fmt.Sprint(m.clusterer),
		"workers":          strconv.Itoa(m.workers),
		"overlap_pruning":  strconv.FormatBool(m.prune),
		"min_cluster_size": strconv.Itoa(m.minSize),
	}
}

// RegionError reports which region's clustering failed.
type RegionError struct {
	Region int
	Err    error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("mapper: clustering region %d: %v", e.Region, e.Err)
}

// Unwrap returns the clusterer's original error.
func (e *RegionError) Unwrap() error { return e.Err }

// RunStats counts what happened during one Build.
type RunStats struct {
	Points          int `json:"points" yaml:"points"`
	Regions         int `json:"regions" yaml:"regions"`
	NonEmptyRegions int `json:"non_empty_regions" yaml:"non_empty_regions"`
	Clusters        int `json:"clusters" yaml:"clusters"`
	DroppedClusters int `json:"dropped_clusters" yaml:"dropped_clusters"`
	NoiseAssignment int `json:"noise_assignments" yaml:"noise_assignments"`
	PairsTested     int `json:"pairs_tested" yaml:"pairs_tested"`
}

// Result is the output of one Build.
type Result struct {
	Graph        *core.Graph
	Regions      []cover.Region
	Membership   cover.Membership
	FilterValues [][]float64
	Stats        RunStats
	Elapsed      time.Duration
}

// regionClusters is the per-region output slot written by exactly one task.
type regionClusters struct {
	region int
	groups [][]int // global point indices, ascending, ordered by first member
	noise  int
}

// Build runs the full pipeline on cloud.
//
// Steps:
//  1. Validate the cloud and the filter against its dimension.
//  2. Filter, cover, assign.
//  3. Cluster every non-empty region concurrently (bounded by Workers).
//  4. Create nodes in (region, cluster) order.
//  5. Single-threaded edge pass over node pairs.
//
// Returns pointcloud validation errors, filter/cover configuration errors,
// *RegionError for clusterer failures, or ctx.Err().
func (m *Mapper) Build(ctx context.Context, cloud *pointcloud.Cloud) (*Result, error) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	if cloud == nil {
		return nil, pointcloud.ErrEmptyInput
	}

	// 1. Validate.
	if err := cloud.Validate(); err != nil {
		return nil, err
	}
	if _, err := m.filter.Dim(cloud.Dim()); err != nil {
		return nil, err
	}

	// 2. Filter → cover → membership.
	values, err := m.filter.Apply(cloud.Points)
	if err != nil {
		return nil, errors.Wrap(err, "mapper: filter")
	}
	regions, err := m.cover.Build(values)
	if err != nil {
		return nil, errors.Wrap(err, "mapper: cover")
	}
	membership, err := m.cover.Assign(regions, values)
	if err != nil {
		return nil, errors.Wrap(err, "mapper: assign")
	}
	nonEmpty := membership.NonEmpty()
	m.log.Debug("cover built",
		zap.Int("points", cloud.Len()),
		zap.Int("regions", len(regions)),
		zap.Int("non_empty", len(nonEmpty)),
	)

	// 3. Fork/join per region.
	slots, err := m.clusterRegions(ctx, cloud, membership, nonEmpty)
	if err != nil {
		m.log.Debug("clustering aborted", zap.Error(err))
		return nil, err
	}

	// 4. Nodes.
	stats := RunStats{Points: cloud.Len(), Regions: len(regions), NonEmptyRegions: len(nonEmpty)}
	g := core.NewGraph()
	var nodes []core.Node
	for _, s := range slots {
		stats.NoiseAssignment += s.noise
		for c, members := range s.groups {
			if len(members) < m.minSize {
				stats.DroppedClusters++
				continue
			}
			n := core.Node{ID: core.NodeID(s.region, c), Region: s.region, Cluster: c, Members: members}
			if err = g.AddNode(n); err != nil {
				return nil, errors.Wrap(err, "mapper: add node")
			}
			nodes = append(nodes, n)
		}
	}
	stats.Clusters = len(nodes)

	// 5. Edges.
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	stats.PairsTested, err = m.linkNodes(g, nodes, regionIndex(regions))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Graph:        g,
		Regions:      regions,
		Membership:   membership,
		FilterValues: values,
		Stats:        stats,
		Elapsed:      time.Since(start),
	}
	m.log.Info("mapper graph built",
		zap.Int("points", stats.Points),
		zap.Int("regions", stats.NonEmptyRegions),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("dropped_clusters", stats.DroppedClusters),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// clusterRegions runs the clusterer on every non-empty region with at most
// m.workers tasks in flight. Slot k belongs to nonEmpty[k] only.
func (m *Mapper) clusterRegions(
	ctx context.Context,
	cloud *pointcloud.Cloud,
	membership cover.Membership,
	nonEmpty []int,
) ([]regionClusters, error) {
	slots := make([]regionClusters, len(nonEmpty))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(m.workers)
	for k, rid := range nonEmpty {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			members := membership.Members(rid)
			subset, err := cloud.Subset(members)
			if err != nil {
				return &RegionError{Region: rid, Err: err}
			}
			res, err := m.clusterer.Cluster(egCtx, subset)
			if err != nil {
				return &RegionError{Region: rid, Err: err}
			}
			if err = res.Check(len(members)); err != nil {
				return &RegionError{Region: rid, Err: err}
			}
			groups := res.Groups()
			for _, grp := range groups {
				for i, local := range grp {
					grp[i] = members[local]
				}
			}
			slots[k] = regionClusters{region: rid, groups: groups, noise: res.NoiseCount()}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slots, nil
}

// linkNodes adds one edge per intersecting node pair from different regions
// and returns the number of intersections computed.
func (m *Mapper) linkNodes(g *core.Graph, nodes []core.Node, regions map[int]cover.Region) (int, error) {
	tested := 0
	for i := 0; i < len(nodes); i++ {
		a := nodes[i]
		for j := i + 1; j < len(nodes); j++ {
			b := nodes[j]
			if a.Region == b.Region {
				continue // clusters of one region are disjoint
			}
			if m.prune && !cover.Overlaps(regions[a.Region], regions[b.Region]) {
				continue
			}
			tested++
			w := IntersectionSize(a.Members, b.Members)
			if w == 0 {
				continue
			}
			if _, err := g.AddEdge(a.ID, b.ID, int64(w)); err != nil {
				return tested, errors.Wrap(err, "mapper: add edge")
			}
		}
	}

	return tested, nil
}

func regionIndex(regions []cover.Region) map[int]cover.Region {
	idx := make(map[int]cover.Region, len(regions))
	for _, r := range regions {
		idx[r.ID] = r
	}

	return idx
}

// IntersectionSize returns |a ∩ b| for ascending, duplicate-free slices.
// Complexity: O(len(a) + len(b)).
func IntersectionSize(a, b []int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}
