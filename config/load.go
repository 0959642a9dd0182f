package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmapper/errors"
)

// ErrUnsupportedFormat indicates a config extension or format other than
// toml, yaml/yml or json.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// NewViper returns a viper instance with defaults and MAPPER_* environment
// bindings. path may be empty.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		format, err := formatOf(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		v.SetConfigType(format)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithHintf(
				errors.Wrapf(err, "config: read %s", path),
				"create one with `mapper config init %s`", path,
			)
		}
	}

	return v, nil
}

// SetDefaults registers every key so environment overrides apply even when
// the file omits it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("filter.kind", d.Filter.Kind)
	v.SetDefault("filter.indices", d.Filter.Indices)
	v.SetDefault("filter.components", d.Filter.Components)
	v.SetDefault("filter.power", d.Filter.Power)
	v.SetDefault("cover.intervals", d.Cover.Intervals)
	v.SetDefault("cover.per_dim", d.Cover.PerDim)
	v.SetDefault("cover.overlap", d.Cover.Overlap)
	v.SetDefault("cover.padding", d.Cover.Padding)
	v.SetDefault("cluster.kind", d.Cluster.Kind)
	v.SetDefault("cluster.eps", d.Cluster.Eps)
	v.SetDefault("cluster.min_pts", d.Cluster.MinPts)
	v.SetDefault("cluster.threshold", d.Cluster.Threshold)
	v.SetDefault("cluster.metric", d.Cluster.Metric)
	v.SetDefault("cluster.min_size", d.Cluster.MinSize)
	v.SetDefault("pipeline.workers", d.Pipeline.Workers)
	v.SetDefault("pipeline.prune", d.Pipeline.Prune)
	v.SetDefault("pipeline.min_cluster_size", d.Pipeline.MinClusterSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

// Load reads path (optional) plus environment overrides and validates the
// result.
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// formatOf maps a file extension to a viper config type.
func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case FormatTOML, FormatJSON:
		return ext, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
}
