package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmapper/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create configuration files",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file + environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.Marshal(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	show.Flags().StringVarP(&format, "format", "f", config.FormatTOML, "toml, yaml or json")

	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default configuration to path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(args[0]); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("wrote %s", args[0])
			return nil
		},
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// PersistentPreRunE already loaded and validated the file
			if _, err := a.cfg.Options(nil); err != nil {
				return err
			}
			src := a.configPath
			if src == "" {
				src = "defaults"
			}
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("%s: configuration is valid (%d workers)", src, a.cfg.EffectiveWorkers())
			return nil
		},
	}

	cmd.AddCommand(show, initCmd, validate)

	return cmd
}
