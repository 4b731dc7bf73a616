package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var exportFlags struct {
	format string
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a markdown report or a YAML dump of preferences",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.format, "format", ui.FormatMarkdown, "Export format: markdown or yaml")
	f.StringVarP(&exportFlags.output, "output", "o", "", "Output file (default launchdeck-<date>.<ext>)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	launches, err := s.fetchLaunches(cmd)
	if err != nil {
		if !ui.IsYAMLFormat(exportFlags.format) {
			return err
		}
		s.logger.Warn("Exporting preferences without the manifest", "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderDim("Manifest unavailable, tracked missions omitted."))
	}

	path, err := ui.ExportReport(ui.NewReport(launches, s.store, time.Now()), exportFlags.format, exportFlags.output)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Exported to %s", path))
	return nil
}
