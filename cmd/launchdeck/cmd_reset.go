package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var resetFlags struct {
	yes bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear pins, readiness scores and the mission of focus",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetFlags.yes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !resetFlags.yes {
		if !isTerminal(out) {
			return errors.New("refusing to reset without --yes when not running in a terminal")
		}
		confirmed, err := ui.ConfirmReset()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, ui.RenderDim("Cancelled."))
			return nil
		}
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.store.Reset()
	if err := s.persistErr(); err != nil {
		return err
	}
	ui.WriteSuccess(out, "Mission preferences reset")
	return nil
}
