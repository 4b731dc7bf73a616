package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/missions"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Print tracked missions and their readiness",
	Args:  cobra.NoArgs,
	RunE:  runAnalytics,
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	launches, err := s.fetchLaunches(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ui.PrintAnalytics(out, ui.NewReport(launches, s.store, time.Now()))

	savedAt, ok, err := s.db.SavedAt(cmd.Context(), missions.StoreName)
	if err != nil {
		s.logger.Warn("Failed to read preference timestamp", "error", err)
	} else if ok {
		fmt.Fprintln(out, ui.RenderDim("Preferences saved "+humanize.Time(savedAt)))
	}
	return nil
}
