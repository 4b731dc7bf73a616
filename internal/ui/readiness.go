package ui

import (
	"github.com/charmbracelet/bubbles/progress"
)

// Readiness slider steps
const (
	readinessStep     = 1
	readinessBigStep  = 5
	readinessBarWidth = 30
)

// NewReadinessBar returns the yellow progress bar used to draw readiness scores
func NewReadinessBar(width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(ColorAccentDim)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
}

// ReadinessFraction converts a readiness percentage to a bar fill in [0,1]
func ReadinessFraction(score int) float64 {
	f := float64(score) / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// readinessDelta maps slider keys to a score change
func readinessDelta(key string) (int, bool) {
	switch key {
	case "left", "h":
		return -readinessStep, true
	case "right", "l":
		return readinessStep, true
	case "shift+left", "H":
		return -readinessBigStep, true
	case "shift+right", "L":
		return readinessBigStep, true
	}
	return 0, false
}
