package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmapper/config"
	"github.com/katalvlaran/lvmapper/cover"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/filter"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Cover.Intervals)
	assert.Equal(t, 0.1, cfg.Cover.Overlap)
	assert.Equal(t, "dbscan", cfg.Cluster.Kind)
	assert.True(t, cfg.Pipeline.Prune)
	assert.Positive(t, cfg.EffectiveWorkers())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Formats(t *testing.T) {
	files := map[string]string{
		"m.toml": "[cover]\nintervals = 4\noverlap = 0.3\n\n[cluster]\nkind = \"single_linkage\"\nthreshold = 0.2\n",
		"m.yaml": "cover:\n  intervals: 4\n  overlap: 0.3\ncluster:\n  kind: single_linkage\n  threshold: 0.2\n",
		"m.json": `{"cover": {"intervals": 4, "overlap": 0.3}, "cluster": {"kind": "single_linkage", "threshold": 0.2}}`,
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, name, body))
			require.NoError(t, err)
			assert.Equal(t, 4, cfg.Cover.Intervals)
			assert.Equal(t, 0.3, cfg.Cover.Overlap)
			assert.Equal(t, "single_linkage", cfg.Cluster.Kind)
			assert.Equal(t, 0.2, cfg.Cluster.Threshold)
			// untouched keys keep their defaults
			assert.Equal(t, 0.5, cfg.Cluster.Eps)
			assert.Equal(t, "identity", cfg.Filter.Kind)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MAPPER_COVER_OVERLAP", "0.25")
	t.Setenv("MAPPER_PIPELINE_WORKERS", "3")
	cfg, err := config.Load(writeFile(t, "m.toml", "[cover]\noverlap = 0.4\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Cover.Overlap)
	assert.Equal(t, 3, cfg.EffectiveWorkers())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = config.Load(writeFile(t, "m.ini", "x=1"))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "m.toml", "[cover]\noverlap = 1.5\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.True(t, errors.IsInvalidConfiguration(err))
	assert.Contains(t, err.Error(), "cover.overlap")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"unknown filter", func(c *config.Config) { c.Filter.Kind = "umap" }, config.ErrInvalid},
		{"projection without indices", func(c *config.Config) { c.Filter.Kind = "projection" }, filter.ErrNoIndices},
		{"zero intervals", func(c *config.Config) { c.Cover.Intervals = 0 }, config.ErrInvalid},
		{"per-dim zero", func(c *config.Config) { c.Cover.PerDim = []int{2, 0} }, config.ErrInvalid},
		{"negative padding", func(c *config.Config) { c.Cover.Padding = -1 }, config.ErrInvalid},
		{"dbscan eps zero", func(c *config.Config) { c.Cluster.Eps = 0 }, config.ErrInvalid},
		{"metric", func(c *config.Config) { c.Cluster.Metric = "hamming" }, config.ErrInvalid},
		{"log level", func(c *config.Config) { c.Log.Level = "trace" }, config.ErrInvalid},
		{"min cluster size", func(c *config.Config) { c.Pipeline.MinClusterSize = 0 }, config.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, config.ErrInvalid)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, errors.Is(err, config.ErrInvalid))
			assert.True(t, errors.IsInvalidConfiguration(err))
		})
	}

	cfg := config.Default()
	cfg.Filter.Kind = " PCA "
	cfg.Filter.Components = 2
	cfg.Cluster.Kind = "Trivial"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "pca", cfg.Filter.Kind)
	assert.Equal(t, "trivial", cfg.Cluster.Kind)
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Filter.Kind = "projection"
	cfg.Filter.Indices = []int{0}
	cfg.Cover.Intervals = 5
	cfg.Pipeline.Workers = 2
	m, err := cfg.NewMapper(nil)
	require.NoError(t, err)
	d := m.Describe()
	assert.Equal(t, "projection[0]", d["filter"])
	assert.Equal(t, (&cover.Cubical{NIntervals: 5, Overlap: 0.1}).String(), d["cover"])
	assert.Equal(t, "2", d["workers"])

	cfg.Cover.Overlap = 2
	_, err = cfg.Options(nil)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestMarshal(t *testing.T) {
	cfg := config.Default()

	out, err := cfg.Marshal("toml")
	require.NoError(t, err)
	var fromTOML config.Config
	_, err = toml.Decode(string(out), &fromTOML)
	require.NoError(t, err)
	assert.Equal(t, cfg.Cover, fromTOML.Cover)

	out, err = cfg.Marshal("yaml")
	require.NoError(t, err)
	var fromYAML config.Config
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, cfg.Cluster, fromYAML.Cluster)

	out, err = cfg.Marshal("json")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"min_pts": 3`)

	_, err = cfg.Marshal("xml")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.toml", "nested/b.yaml", "c.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, config.WriteDefault(path))
		cfg, err := config.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, config.Default(), cfg, name)
	}

	err := config.WriteDefault(filepath.Join(dir, "a.toml"))
	require.Error(t, err, "existing files are not overwritten")
}

func TestWatcher(t *testing.T) {
	path := writeFile(t, "m.toml", "[cover]\nintervals = 3\n")
	w, err := config.NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg *config.Config, err error) {
			if err == nil {
				got <- cfg
			}
		})
	}()

	// give the watcher a moment to register before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[cover]\nintervals = 7\n"), 0o644))

	select {
	case cfg := <-got:
		assert.Equal(t, 7, cfg.Cover.Intervals)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
