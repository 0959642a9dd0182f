// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvmapper/pointcloud"
)

// Circle returns n points evenly spaced by angle on a circle of the configured
// radius, centred at the origin, plus noise.
// Returns ErrTooFewPoints for n < 1.
// Complexity: O(n).
func Circle(n int, opts ...Option) (*pointcloud.Cloud, error) {
	if n < 1 {
		return nil, builderErrorf(MethodCircle, ErrTooFewPoints)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()
	points := make([][]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = []float64{
			cfg.radius*math.Cos(theta) + rng.NormFloat64()*cfg.noise,
			cfg.radius*math.Sin(theta) + rng.NormFloat64()*cfg.noise,
		}
		labels[i] = "circle"
	}

	return pointcloud.New(points, labels)
}

// Blobs returns perBlob points around every center. Offsets are Gaussian with
// standard deviation radius·0.1 plus the configured noise.
// Points are emitted blob by blob; labels are "blob-<k>".
// Returns ErrTooFewPoints or ErrNoCenters.
// Complexity: O(len(centers)·perBlob·dim).
func Blobs(centers [][]float64, perBlob int, opts ...Option) (*pointcloud.Cloud, error) {
	if perBlob < 1 {
		return nil, builderErrorf(MethodBlobs, ErrTooFewPoints)
	}
	if len(centers) == 0 || len(centers[0]) == 0 {
		return nil, builderErrorf(MethodBlobs, ErrNoCenters)
	}
	dim := len(centers[0])
	for _, c := range centers {
		if len(c) != dim {
			return nil, builderErrorf(MethodBlobs, ErrNoCenters)
		}
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()
	sigma := math.Hypot(cfg.radius*0.1, cfg.noise)
	points := make([][]float64, 0, len(centers)*perBlob)
	labels := make([]string, 0, len(centers)*perBlob)
	for k, c := range centers {
		label := "blob-" + strconv.Itoa(k)
		for i := 0; i < perBlob; i++ {
			p := make([]float64, dim)
			for d := range p {
				p[d] = c[d] + rng.NormFloat64()*sigma
			}
			points = append(points, p)
			labels = append(labels, label)
		}
	}

	return pointcloud.New(points, labels)
}

// Line returns n points t·(1,…,1) for t evenly spaced in [0,1], plus noise.
// A single point sits at the origin.
// Returns ErrTooFewPoints for n < 1 or dim < 1.
// Complexity: O(n·dim).
func Line(n, dim int, opts ...Option) (*pointcloud.Cloud, error) {
	if n < 1 || dim < 1 {
		return nil, builderErrorf(MethodLine, ErrTooFewPoints)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()
	points := make([][]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		p := make([]float64, dim)
		for d := range p {
			p[d] = t + rng.NormFloat64()*cfg.noise
		}
		points[i] = p
		labels[i] = "line"
	}

	return pointcloud.New(points, labels)
}
