package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmapper/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/graph over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := server.NewRouter(a.cfg, a.log).Setup()
			return server.Serve(cmd.Context(), addr, handler, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
