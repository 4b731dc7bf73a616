package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var pinCmd = &cobra.Command{
	Use:   "pin <mission-id>",
	Short: "Toggle a mission on the tracking board",
	Args:  cobra.ExactArgs(1),
	RunE:  runPin,
}

func runPin(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id := args[0]
	s.store.TogglePin(id)
	if err := s.persistErr(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.store.IsPinned(id) {
		ui.WriteSuccess(out, fmt.Sprintf("Pinned %s", id))
	} else {
		ui.WriteSuccess(out, fmt.Sprintf("Unpinned %s", id))
	}
	fmt.Fprintf(out, "Pinned missions: %d\n", len(s.store.Preferences().PinnedMissionIDs))
	return nil
}
