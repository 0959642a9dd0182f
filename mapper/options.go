// SPDX-License-Identifier: MIT

package mapper

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmapper/cluster"
	"github.com/katalvlaran/lvmapper/cover"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/filter"
	"github.com/katalvlaran/lvmapper/matrix"
)

// Defaults applied by New.
const (
	DefaultEps            = 0.5
	DefaultMinPts         = 3
	DefaultMinClusterSize = 1
)

// Sentinel errors for pipeline configuration.
var (
	// ErrNilCapability indicates a nil filter, cover or clusterer.
	ErrNilCapability = errors.Invalid("mapper: filter, cover and clusterer must be non-nil")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.Invalid("mapper: workers must be >= 0")

	// ErrBadMinClusterSize indicates a minimum cluster size below 1.
	ErrBadMinClusterSize = errors.Invalid("mapper: min cluster size must be >= 1")
)

// Option configures a Mapper. An invalid Option is recorded and surfaced by New.
type Option func(*Mapper)

// WithFilter sets the lens.
func WithFilter(f filter.Filter) Option {
	return func(m *Mapper) {
		if f == nil {
			m.err = errors.Wrap(ErrNilCapability, "filter")
			return
		}
		m.filter = f
	}
}

// WithCover sets the cover.
func WithCover(c cover.Cover) Option {
	return func(m *Mapper) {
		if c == nil {
			m.err = errors.Wrap(ErrNilCapability, "cover")
			return
		}
		m.cover = c
	}
}

// WithClusterer sets the per-region clusterer.
func WithClusterer(c cluster.Clusterer) Option {
	return func(m *Mapper) {
		if c == nil {
			m.err = errors.Wrap(ErrNilCapability, "clusterer")
			return
		}
		m.clusterer = c
	}
}

// WithWorkers bounds the number of regions clustered at once.
// 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(m *Mapper) {
		if n < 0 {
			m.err = errors.Wrapf(ErrBadWorkers, "workers=%d", n)
			return
		}
		m.workers = n
	}
}

// WithLogger sets the structured logger; nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mapper) {
		if l == nil {
			l = zap.NewNop()
		}
		m.log = l
	}
}

// WithOverlapPruning toggles skipping node pairs whose regions are disjoint.
func WithOverlapPruning(on bool) Option {
	return func(m *Mapper) { m.prune = on }
}

// WithMinClusterSize drops clusters with fewer members than n (n >= 1).
func WithMinClusterSize(n int) Option {
	return func(m *Mapper) {
		if n < 1 {
			m.err = errors.Wrapf(ErrBadMinClusterSize, "min=%d", n)
			return
		}
		m.minSize = n
	}
}

// defaults returns a Mapper with the documented default capabilities.
func defaults() *Mapper {
	return &Mapper{
		filter:    filter.Identity(),
		cover:     &cover.Cubical{NIntervals: cover.DefaultIntervals, Overlap: cover.DefaultOverlap},
		clusterer: &cluster.DBSCAN{Eps: DefaultEps, MinPts: DefaultMinPts, Metric: matrix.Euclidean},
		workers:   runtime.GOMAXPROCS(0),
		log:       zap.NewNop(),
		prune:     true,
		minSize:   DefaultMinClusterSize,
	}
}
