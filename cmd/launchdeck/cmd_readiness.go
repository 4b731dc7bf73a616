package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness <mission-id> [score]",
	Short: "Set a mission's readiness score (60-100, prompts when omitted)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runReadiness,
}

func runReadiness(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id := args[0]
	out := cmd.OutOrStdout()

	var score float64
	if len(args) == 2 {
		score, err = ui.ParseScore(args[1])
		if err != nil {
			return err
		}
	} else {
		if !isTerminal(out) {
			return errors.New("score required when not running in a terminal")
		}
		score, err = ui.PromptForReadiness(id, s.store.EnsureReadiness(id))
		if err != nil {
			return err
		}
	}

	s.store.SetReadiness(id, score)
	if err := s.persistErr(); err != nil {
		return err
	}

	stored, _ := s.store.Readiness(id)
	ui.WriteSuccess(out, fmt.Sprintf("Readiness for %s set to %d%%", id, stored))
	return nil
}
