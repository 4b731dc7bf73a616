package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var focusFlags struct {
	clear bool
}

var focusCmd = &cobra.Command{
	Use:   "focus [mission-id]",
	Short: "Set the mission of focus (opens a picker when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFocus,
}

func init() {
	focusCmd.Flags().BoolVar(&focusFlags.clear, "clear", false, "Clear the mission of focus")
}

func runFocus(cmd *cobra.Command, args []string) error {
	if focusFlags.clear && len(args) > 0 {
		return errors.New("--clear takes no mission id")
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	if focusFlags.clear {
		s.store.ClearSelection()
		if err := s.persistErr(); err != nil {
			return err
		}
		ui.WriteSuccess(out, "Cleared mission of focus")
		return nil
	}

	if len(args) == 1 {
		s.store.SelectMission(args[0])
		if err := s.persistErr(); err != nil {
			return err
		}
		ui.WriteSuccess(out, fmt.Sprintf("Focused %s", args[0]))
		return nil
	}

	if !isTerminal(out) {
		return errors.New("mission id required when not running in a terminal")
	}

	launches, err := s.fetchLaunches(cmd)
	if err != nil {
		return err
	}
	if len(launches) == 0 {
		return errNoLaunches
	}

	picked, ok, err := ui.RunMissionPicker(launches, s.store.Preferences().Selected())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, ui.RenderDim("Cancelled."))
		return nil
	}

	s.store.SelectMission(picked.ID)
	if err := s.persistErr(); err != nil {
		return err
	}
	ui.WriteSuccess(out, fmt.Sprintf("Focused %s", picked.Name))
	return nil
}
