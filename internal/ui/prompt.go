package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thesavant42/launchdeck/internal/missions"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// ParseScore parses a readiness score typed by the user or given on the
// command line. Fractions are accepted; the store rounds and clamps.
func ParseScore(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(sanitizeInput(s)), "%")
	if s == "" {
		return 0, fmt.Errorf("score cannot be empty")
	}
	score, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: use a number between %d and %d", s, missions.MinReadiness, missions.MaxReadiness)
	}
	return score, nil
}

// PromptForReadiness asks for a new readiness score for a mission,
// prefilled with its current score
func PromptForReadiness(missionName string, current int) (float64, error) {
	input := strconv.Itoa(current)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Readiness for %s", missionName)).
				Description(fmt.Sprintf("Whole percent between %d and %d", missions.MinReadiness, missions.MaxReadiness)).
				Placeholder(input).
				Value(&input).
				Validate(func(s string) error {
					_, err := ParseScore(s)
					return err
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("prompt cancelled: %w", err)
	}
	return ParseScore(input)
}

// ConfirmReset asks the user to confirm clearing all pins, scores and focus
func ConfirmReset() (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset mission preferences?").
				Description("Clears every pinned mission, readiness score and the current focus").
				Affirmative("Yes, reset").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirm, nil
}
