package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmapper/cluster"
	"github.com/katalvlaran/lvmapper/cover"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/filter"
	"github.com/katalvlaran/lvmapper/mapper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "MAPPER"

// ErrInvalid is returned by Validate for any field that fails its rules.
var ErrInvalid = errors.Invalid("config: invalid")

// Config is the complete run configuration.
type Config struct {
	Filter   FilterConfig   `mapstructure:"filter" toml:"filter" yaml:"filter" json:"filter"`
	Cover    CoverConfig    `mapstructure:"cover" toml:"cover" yaml:"cover" json:"cover"`
	Cluster  ClusterConfig  `mapstructure:"cluster" toml:"cluster" yaml:"cluster" json:"cluster"`
	Pipeline PipelineConfig `mapstructure:"pipeline" toml:"pipeline" yaml:"pipeline" json:"pipeline"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// FilterConfig selects the lens.
type FilterConfig struct {
	Kind       string  `mapstructure:"kind" toml:"kind" yaml:"kind" json:"kind" validate:"oneof=identity projection sum mean max min l2norm centroid eccentricity pca"`
	Indices    []int   `mapstructure:"indices" toml:"indices,omitempty" yaml:"indices,omitempty" json:"indices,omitempty" validate:"dive,gte=0"`
	Components int     `mapstructure:"components" toml:"components" yaml:"components" json:"components" validate:"gte=0"`
	Power      float64 `mapstructure:"power" toml:"power" yaml:"power" json:"power" validate:"gte=0"`
}

// CoverConfig shapes the cubical cover.
type CoverConfig struct {
	Intervals int     `mapstructure:"intervals" toml:"intervals" yaml:"intervals" json:"intervals" validate:"gte=1"`
	PerDim    []int   `mapstructure:"per_dim" toml:"per_dim,omitempty" yaml:"per_dim,omitempty" json:"per_dim,omitempty" validate:"dive,gte=1"`
	Overlap   float64 `mapstructure:"overlap" toml:"overlap" yaml:"overlap" json:"overlap" validate:"gte=0,lt=1"`
	Padding   float64 `mapstructure:"padding" toml:"padding" yaml:"padding" json:"padding" validate:"gte=0"`
}

// ClusterConfig selects the per-region clusterer.
type ClusterConfig struct {
	Kind      string  `mapstructure:"kind" toml:"kind" yaml:"kind" json:"kind" validate:"oneof=dbscan single_linkage trivial"`
	Eps       float64 `mapstructure:"eps" toml:"eps" yaml:"eps" json:"eps" validate:"gte=0"`
	MinPts    int     `mapstructure:"min_pts" toml:"min_pts" yaml:"min_pts" json:"min_pts" validate:"gte=0"`
	Threshold float64 `mapstructure:"threshold" toml:"threshold" yaml:"threshold" json:"threshold" validate:"gte=0"`
	Metric    string  `mapstructure:"metric" toml:"metric" yaml:"metric" json:"metric" validate:"omitempty,oneof=euclidean manhattan chebyshev cosine"`
	MinSize   int     `mapstructure:"min_size" toml:"min_size" yaml:"min_size" json:"min_size" validate:"gte=0"`
}

// PipelineConfig tunes the builder itself.
type PipelineConfig struct {
	Workers        int  `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers" validate:"gte=0"` // 0 = physical cores
	Prune          bool `mapstructure:"prune" toml:"prune" yaml:"prune" json:"prune"`
	MinClusterSize int  `mapstructure:"min_cluster_size" toml:"min_cluster_size" yaml:"min_cluster_size" json:"min_cluster_size" validate:"gte=1"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{Kind: filter.KindIdentity, Power: 1},
		Cover: CoverConfig{
			Intervals: cover.DefaultIntervals,
			Overlap:   cover.DefaultOverlap,
		},
		Cluster: ClusterConfig{
			Kind:   cluster.KindDBSCAN,
			Eps:    mapper.DefaultEps,
			MinPts: mapper.DefaultMinPts,
			Metric: "euclidean",
		},
		Pipeline: PipelineConfig{Prune: true, MinClusterSize: mapper.DefaultMinClusterSize},
		Log:      LogConfig{Level: "info"},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Filter.Indices = append([]int(nil), c.Filter.Indices...)
	out.Cover.PerDim = append([]int(nil), c.Cover.PerDim...)

	return &out
}

var validate = validator.New()

// Validate checks field rules and the cross-field rules the capabilities
// enforce (projection indices, pca components, eps and min_pts for dbscan).
// Every failure matches ErrInvalid and keeps the capability's own sentinel.
func (c *Config) Validate() error {
	c.normalize()
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, err := c.filter(); err != nil {
		return invalidCapability("filter", err)
	}
	if _, err := c.clusterer(); err != nil {
		return invalidCapability("cluster", err)
	}
	if err := c.cover().Validate(); err != nil {
		return invalidCapability("cover", err)
	}

	return nil
}

// normalize lower-cases the enum-like fields so validation and ByName agree.
func (c *Config) normalize() {
	c.Filter.Kind = strings.ToLower(strings.TrimSpace(c.Filter.Kind))
	if c.Filter.Kind == "" {
		c.Filter.Kind = filter.KindIdentity
	}
	c.Cluster.Kind = strings.ToLower(strings.TrimSpace(c.Cluster.Kind))
	if c.Cluster.Kind == "" {
		c.Cluster.Kind = cluster.KindDBSCAN
	}
	c.Cluster.Metric = strings.ToLower(strings.TrimSpace(c.Cluster.Metric))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// invalidCapability wraps both ErrInvalid and the capability's own error, so
// either sentinel matches with errors.Is from this module or the standard library.
func invalidCapability(what string, err error) error {
	return errors.WithStack(fmt.Errorf("%w: %s: %w", ErrInvalid, what, err))
}

// formatValidationError joins validator field errors into one ErrInvalid.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return errors.WithHint(
		errors.Wrap(ErrInvalid, strings.Join(msgs, "; ")),
		"run `mapper config show` to see the effective configuration",
	)
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))
	switch e.Tag() {
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "gte":
		return field + " must be >= " + e.Param()
	case "lt":
		return field + " must be < " + e.Param()
	default:
		return field + " is invalid"
	}
}

func (c *Config) filter() (filter.Filter, error) {
	return filter.ByName(c.Filter.Kind, filter.Params{
		Indices:    c.Filter.Indices,
		Components: c.Filter.Components,
		Power:      c.Filter.Power,
	})
}

func (c *Config) clusterer() (cluster.Clusterer, error) {
	return cluster.ByName(c.Cluster.Kind, cluster.Params{
		Eps:       c.Cluster.Eps,
		MinPts:    c.Cluster.MinPts,
		Threshold: c.Cluster.Threshold,
		Metric:    c.Cluster.Metric,
		MinSize:   c.Cluster.MinSize,
	})
}

func (c *Config) cover() *cover.Cubical {
	return &cover.Cubical{
		NIntervals: c.Cover.Intervals,
		Overlap:    c.Cover.Overlap,
		Padding:    c.Cover.Padding,
		PerDim:     c.Cover.PerDim,
	}
}

// EffectiveWorkers resolves Workers = 0 to the number of physical cores,
// falling back to GOMAXPROCS when the host does not report them.
func (c *Config) EffectiveWorkers() int {
	if c.Pipeline.Workers > 0 {
		return c.Pipeline.Workers
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}

// Options validates c and converts it to mapper options. log may be nil.
func (c *Config) Options(log *zap.Logger) ([]mapper.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f, err := c.filter()
	if err != nil {
		return nil, err
	}
	cl, err := c.clusterer()
	if err != nil {
		return nil, err
	}

	return []mapper.Option{
		mapper.WithFilter(f),
		mapper.WithCover(c.cover()),
		mapper.WithClusterer(cl),
		mapper.WithWorkers(c.EffectiveWorkers()),
		mapper.WithOverlapPruning(c.Pipeline.Prune),
		mapper.WithMinClusterSize(c.Pipeline.MinClusterSize),
		mapper.WithLogger(log),
	}, nil
}

// NewMapper is shorthand for mapper.New(c.Options(log)...).
func (c *Config) NewMapper(log *zap.Logger) (*mapper.Mapper, error) {
	opts, err := c.Options(log)
	if err != nil {
		return nil, err
	}

	return mapper.New(opts...)
}
