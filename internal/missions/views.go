package missions

import (
	"math"

	"github.com/thesavant42/launchdeck/internal/models"
)

// FocusedMission picks the mission the dashboard highlights: the explicit
// selection, else the first pinned launch, else the first launch. A selection
// or pin set that matches nothing falls back to the first launch.
func FocusedMission(launches []models.Launch, prefs models.Preferences) (models.Launch, bool) {
	if len(launches) == 0 {
		return models.Launch{}, false
	}

	if selected := prefs.Selected(); selected != "" {
		for _, l := range launches {
			if l.ID == selected {
				return l, true
			}
		}
		return launches[0], true
	}

	if len(prefs.PinnedMissionIDs) > 0 {
		for _, l := range launches {
			if prefs.IsPinned(l.ID) {
				return l, true
			}
		}
	}
	return launches[0], true
}

// TrackedMissions returns the pinned launches in manifest order
func TrackedMissions(launches []models.Launch, prefs models.Preferences) []models.Launch {
	var tracked []models.Launch
	for _, l := range launches {
		if prefs.IsPinned(l.ID) {
			tracked = append(tracked, l)
		}
	}
	return tracked
}

// AverageReadiness is the rounded mean readiness of the tracked missions.
// ok is false when nothing is tracked.
func (s *Store) AverageReadiness(tracked []models.Launch) (avg int, ok bool) {
	if len(tracked) == 0 {
		return 0, false
	}
	sum := 0
	for _, l := range tracked {
		sum += s.EnsureReadiness(l.ID)
	}
	return int(math.Round(float64(sum) / float64(len(tracked)))), true
}
