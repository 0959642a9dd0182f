package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmapper/config"
	"github.com/katalvlaran/lvmapper/internal/logger"
)

// app carries the state PersistentPreRunE prepares for every subcommand.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mapper",
		Short: "Build Mapper graphs (topological summaries) of point clouds",
		Long: `mapper turns a point cloud into a graph: a filter projects every point,
a cubical cover splits the projected space into overlapping regions, each
region's points are clustered, and clusters sharing points are linked.

Examples:
  mapper build --input points.csv --output graph.json
  mapper config init mapper.toml
  mapper watch --config mapper.toml --input points.csv --output graph.json
  mapper serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (toml, yaml or json)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit JSON logs")

	root.AddCommand(
		newBuildCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads the configuration and builds the logger. Flags win over the file.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	return a.apply(cmd, cfg)
}

// apply installs cfg, re-applying flag overrides, and rebuilds the logger from
// its log section. The previous logger is synced before it is replaced.
func (a *app) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	log, err := logger.NewTo(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	a.cfg, a.log = cfg, log

	return nil
}
