package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var launchesCmd = &cobra.Command{
	Use:   "launches",
	Short: "Fetch and print the upcoming launch manifest",
	Args:  cobra.NoArgs,
	RunE:  runLaunches,
}

func runLaunches(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	launches, err := s.fetchLaunches(cmd)
	if err != nil {
		return err
	}
	ui.PrintManifest(cmd.OutOrStdout(), ui.NewReport(launches, s.store, time.Now()))
	return nil
}
