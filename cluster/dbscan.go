// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/matrix"
)

// unvisited marks a point DBSCAN has not labelled yet.
const unvisited = -2

// DBSCAN is density-based clustering with a fixed radius and density threshold.
type DBSCAN struct {
	// Eps is the neighbourhood radius (> 0).
	Eps float64

	// MinPts is the minimum neighbourhood size, the point itself included (>= 1).
	MinPts int

	// Metric defaults to Euclidean when nil.
	Metric Metric
}

// Validate checks Eps and MinPts.
func (c *DBSCAN) Validate() error {
	if !(c.Eps > 0) {
		return errors.Wrapf(ErrBadEps, "eps=%g", c.Eps)
	}
	if c.MinPts < 1 {
		return errors.Wrapf(ErrBadMinPts, "min_pts=%d", c.MinPts)
	}

	return nil
}

func (c *DBSCAN) String() string {
	return fmt.Sprintf("%s(eps=%g, min_pts=%d)", KindDBSCAN, c.Eps, c.MinPts)
}

// Cluster runs DBSCAN over points.
// Clusters are numbered in order of their first core point, so labels are
// reproducible for a fixed point order.
func (c *DBSCAN) Cluster(ctx context.Context, points [][]float64) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	metric := c.Metric
	if metric == nil {
		metric = matrix.Euclidean
	}
	n := len(points)

	// Stage 1: neighbourhoods (each unordered pair evaluated once)
	neighbours := make([][]int, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		neighbours[i] = append(neighbours[i], i)
		for j := i + 1; j < n; j++ {
			if metric(points[i], points[j]) <= c.Eps {
				neighbours[i] = append(neighbours[i], j)
				neighbours[j] = append(neighbours[j], i)
			}
		}
	}

	// Stage 2: breadth-first expansion from core points
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}
	next := 0
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if len(neighbours[i]) < c.MinPts {
			labels[i] = Noise // may still become a border point
			continue
		}
		id := next
		next++
		labels[i] = id
		queue = append(queue[:0], neighbours[i]...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]
			if labels[j] == Noise {
				labels[j] = id
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = id
			if len(neighbours[j]) >= c.MinPts {
				queue = append(queue, neighbours[j]...)
			}
		}
	}

	return Result{Labels: labels}, nil
}
