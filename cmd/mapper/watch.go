package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmapper/config"
	"github.com/katalvlaran/lvmapper/errors"
)

func newWatchCmd(a *app) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the graph whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.configPath == "" {
				return errors.WithHint(errors.New("watch needs a config file"), "pass --config mapper.toml")
			}
			ctx := cmd.Context()
			stderr := cmd.ErrOrStderr()

			doc, err := runBuild(ctx, a.cfg, a.log, f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			printSummary(stderr, doc)

			w, err := config.NewWatcher(a.configPath, a.log)
			if err != nil {
				return err
			}
			pterm.Info.WithWriter(stderr).Printfln("watching %s (Ctrl-C to stop)", a.configPath)
			err = w.Run(ctx, func(cfg *config.Config, err error) {
				if err != nil {
					pterm.Error.WithWriter(stderr).Println(err)
					return
				}
				if err = a.apply(cmd, cfg); err != nil {
					pterm.Error.WithWriter(stderr).Println(err)
					return
				}
				doc, err := runBuild(ctx, a.cfg, a.log, f, cmd.OutOrStdout())
				if err != nil {
					a.log.Warn("rebuild failed", zap.Error(err))
					pterm.Error.WithWriter(stderr).Println(err)
					return
				}
				printSummary(stderr, doc)
			})
			if errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		},
	}
	f.register(cmd)

	return cmd
}
