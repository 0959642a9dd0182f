// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/matrix"
)

// SingleLinkage cuts the single-linkage dendrogram at a fixed distance.
type SingleLinkage struct {
	// Threshold is the largest distance still merged (>= 0).
	Threshold float64

	// MinSize turns smaller components into Noise; 0 and 1 keep everything.
	MinSize int

	// Metric defaults to Euclidean when nil.
	Metric Metric
}

// Validate checks Threshold and MinSize.
func (c *SingleLinkage) Validate() error {
	if !(c.Threshold >= 0) {
		return errors.Wrapf(ErrBadThreshold, "threshold=%g", c.Threshold)
	}
	if c.MinSize < 0 {
		return errors.Wrapf(ErrBadMinSize, "min_size=%d", c.MinSize)
	}

	return nil
}

func (c *SingleLinkage) String() string {
	return fmt.Sprintf("%s(threshold=%g, min_size=%d)", KindSingleLinkage, c.Threshold, c.MinSize)
}

// pair is a candidate merge between points i < j.
type pair struct {
	i, j int
	d    float64
}

// Cluster merges points along ascending pair distances (Kruskal) until no pair
// under Threshold joins two different components.
//
// Steps:
//  1. Collect every pair with distance <= Threshold, in (i, j) order.
//  2. Stable-sort by distance so ties keep (i, j) order.
//  3. Union along sorted pairs; stop after n-1 successful unions.
//  4. Label components by first appearance; drop those below MinSize.
func (c *SingleLinkage) Cluster(ctx context.Context, points [][]float64) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	metric := c.Metric
	if metric == nil {
		metric = matrix.Euclidean
	}
	n := len(points)

	// 1. Candidate pairs.
	var pairs []pair
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		for j := i + 1; j < n; j++ {
			if d := metric(points[i], points[j]); d <= c.Threshold {
				pairs = append(pairs, pair{i: i, j: j, d: d})
			}
		}
	}

	// 2. Ascending distance, deterministic ties.
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].d < pairs[b].d })

	// 3. Kruskal over the disjoint-set forest.
	ds := newDisjointSet(n)
	merged := 0
	for _, p := range pairs {
		if merged == n-1 {
			break
		}
		if ds.union(p.i, p.j) {
			merged++
		}
	}

	// 4. Labels.
	roots := make([]int, n)
	for i := range roots {
		roots[i] = ds.find(i)
	}

	return Result{Labels: relabel(roots, c.MinSize)}, nil
}

// disjointSet is a union-find forest with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, compressing the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
