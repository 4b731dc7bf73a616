package main

import (
	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [route]",
	Short: "Open the interactive dashboard (routes: /, /missions, /analytics)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	route := "/"
	if len(args) > 0 {
		route = args[0]
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if wantsSplash(cmd) {
		if err := ui.ShowSplash(); err != nil {
			s.logger.Warn("Splash screen failed", "error", err)
		}
	}

	s.logger.Info("Opening dashboard", "route", route)
	return ui.RunDashboard(cmd.Context(), s.feed, s.store, route, s.logger.WithPrefix("tui"))
}

// wantsSplash reports whether the splash runs: only for the bare root command
func wantsSplash(cmd *cobra.Command) bool {
	return !rootFlags.noSplash && cmd.Parent() == nil
}
