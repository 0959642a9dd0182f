package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmapper/config"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/export"
	"github.com/katalvlaran/lvmapper/pointcloud"
)

// buildFlags are shared by build and watch.
type buildFlags struct {
	input       string
	labelColumn int
	output      string
	format      string
	noMembers   bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "CSV file of points (required)")
	cmd.Flags().IntVar(&f.labelColumn, "labels-column", -1, "0-based column holding point labels")
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&f.format, "format", "f", export.FormatJSON, "output format: json or yaml")
	cmd.Flags().BoolVar(&f.noMembers, "no-members", false, "omit member indices from nodes")
	_ = cmd.MarkFlagRequired("input")
}

func newBuildCmd(a *app) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a Mapper graph from a CSV point cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := runBuild(cmd.Context(), a.cfg, a.log, f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			printSummary(cmd.ErrOrStderr(), doc)
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

// runBuild reads the cloud, runs the pipeline and writes the document.
func runBuild(ctx context.Context, cfg *config.Config, log *zap.Logger, f *buildFlags, stdout io.Writer) (*export.Document, error) {
	cloud, err := readCloud(f.input, f.labelColumn)
	if err != nil {
		return nil, err
	}
	m, err := cfg.NewMapper(log)
	if err != nil {
		return nil, errors.WithHint(err, "check the [filter], [cover] and [cluster] sections of your config")
	}
	res, err := m.Build(ctx, cloud)
	if err != nil {
		return nil, err
	}
	doc, err := export.FromResult(res, cloud,
		export.WithConfig(m.Describe()),
		export.WithMembers(!f.noMembers),
	)
	if err != nil {
		return nil, err
	}

	return doc, writeDoc(doc, f.output, f.format, stdout)
}

func readCloud(path string, labelColumn int) (*pointcloud.Cloud, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "open %s", path), "--input expects a CSV file of numeric columns")
	}
	defer file.Close()

	cloud, err := pointcloud.ReadCSV(file, pointcloud.WithLabelColumn(labelColumn))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return cloud, nil
}

func writeDoc(doc *export.Document, path, format string, stdout io.Writer) error {
	if path == "" || path == "-" {
		return doc.Encode(stdout, format)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := doc.Encode(file, format); err != nil {
		_ = file.Close()
		return err
	}

	return errors.Wrapf(file.Close(), "close %s", path)
}

// printSummary renders the run summary on w (stderr, so stdout stays clean).
func printSummary(w io.Writer, doc *export.Document) {
	s := doc.Meta.Stats
	data := pterm.TableData{
		{"Nodes", "Edges", "Components", "Points", "Covered", "Elapsed"},
		{
			pterm.Sprint(s.Nodes), pterm.Sprint(s.Edges), pterm.Sprint(s.Components),
			pterm.Sprint(s.Points), pterm.Sprint(s.CoveredPoints), doc.Meta.Elapsed,
		},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
	if s.CoveredPoints < s.Points {
		pterm.Warning.WithWriter(w).Printfln("%d points fell into no node (noise or dropped clusters)", s.Points-s.CoveredPoints)
	}
	pterm.Success.WithWriter(w).Printfln("graph built at %s", doc.Meta.GeneratedAt.Format(time.RFC3339))
}
