package ui

// spinner.go holds the two spinners the app uses: the bubbles spinner embedded
// in the TUI while the feed is loading, and the blocking huh spinner shown by
// one-shot CLI commands while they wait on the network.

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	huhspinner "github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewAppSpinner returns the white dot spinner used inside the TUI
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorText)
	return s
}

// RunWithSpinner executes action while displaying a spinner and returns the
// action's error.
//
// Example:
//
//	var launches []models.Launch
//	err := RunWithSpinner("Fetching manifest...", func() error {
//	    var fetchErr error
//	    launches, fetchErr = client.FetchUpcoming(ctx)
//	    return fetchErr
//	})
func RunWithSpinner(title string, action func() error) error {
	var actionErr error
	err := huhspinner.New().
		Title(title).
		Style(lipgloss.NewStyle().Foreground(ColorText)).
		Action(func() {
			actionErr = action()
		}).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	return actionErr
}
