package missions

import (
	"context"
	"testing"

	"github.com/thesavant42/launchdeck/internal/models"
)

func manifest(ids ...string) []models.Launch {
	out := make([]models.Launch, len(ids))
	for i, id := range ids {
		out[i] = models.Launch{ID: id, Name: "Mission " + id}
	}
	return out
}

func prefsWith(selected string, pinned ...string) models.Preferences {
	p := models.NewPreferences()
	p.PinnedMissionIDs = append(p.PinnedMissionIDs, pinned...)
	if selected != "" {
		p.SelectedMissionID = &selected
	}
	return p
}

func TestFocusedMission(t *testing.T) {
	launches := manifest("a", "b", "c")

	tests := []struct {
		name     string
		launches []models.Launch
		prefs    models.Preferences
		wantID   string
		wantOK   bool
	}{
		{"no launches", nil, prefsWith("a"), "", false},
		{"nothing chosen", launches, prefsWith(""), "a", true},
		{"explicit selection", launches, prefsWith("c", "b"), "c", true},
		{"unknown selection falls back to first", launches, prefsWith("zzz", "b"), "a", true},
		{"first pinned in manifest order", launches, prefsWith("", "c", "b"), "b", true},
		{"pins outside manifest", launches, prefsWith("", "x"), "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FocusedMission(tt.launches, tt.prefs)
			if ok != tt.wantOK || got.ID != tt.wantID {
				t.Errorf("FocusedMission() = (%q, %v), want (%q, %v)", got.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestTrackedMissions(t *testing.T) {
	got := TrackedMissions(manifest("a", "b", "c", "d"), prefsWith("", "d", "b", "gone"))
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "d" {
		t.Errorf("TrackedMissions() = %+v, want [b d]", got)
	}
}

func TestAverageReadiness(t *testing.T) {
	s, err := Open(context.Background(), NewMemoryBackend(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := s.AverageReadiness(nil); ok {
		t.Error("AverageReadiness(nil) ok = true, want false")
	}

	s.SetReadiness("a", 60)
	s.SetReadiness("b", 65)
	avg, ok := s.AverageReadiness(manifest("a", "b"))
	if !ok || avg != 63 {
		t.Errorf("AverageReadiness() = (%d, %v), want (63, true)", avg, ok)
	}

	// unseeded missions contribute their seeded value
	avg, _ = s.AverageReadiness(manifest("a", "ab"))
	if want := 75; avg != want { // (60 + 90) / 2
		t.Errorf("AverageReadiness() = %d, want %d", avg, want)
	}
}
