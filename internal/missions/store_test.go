package missions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thesavant42/launchdeck/internal/models"
)

func openStore(t *testing.T, backend Backend) *Store {
	t.Helper()
	s, err := Open(context.Background(), backend, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func TestOpenEmpty(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	prefs := s.Preferences()
	if len(prefs.PinnedMissionIDs) != 0 || len(prefs.ReadinessByMission) != 0 || prefs.SelectedMissionID != nil {
		t.Errorf("Preferences() = %+v, want empty", prefs)
	}
}

func TestTogglePinTwiceRestores(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	s.TogglePin("a")
	s.TogglePin("b")
	before := s.Preferences().PinnedMissionIDs

	s.TogglePin("c")
	if !s.IsPinned("c") {
		t.Fatal("c not pinned after first toggle")
	}
	s.TogglePin("c")

	if diff := cmp.Diff(before, s.Preferences().PinnedMissionIDs); diff != "" {
		t.Errorf("pins changed after toggle pair (-want +got):\n%s", diff)
	}
}

func TestTogglePinKeepsOrderOnRemove(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	for _, id := range []string{"a", "b", "c"} {
		s.TogglePin(id)
	}
	s.TogglePin("b")
	if diff := cmp.Diff([]string{"a", "c"}, s.Preferences().PinnedMissionIDs); diff != "" {
		t.Errorf("pins (-want +got):\n%s", diff)
	}
}

func TestSetReadinessClamps(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{75, 75},
		{59.4, 60},
		{-10, 60},
		{100.4, 100},
		{100.6, 100},
		{250, 100},
		{72.5, 73},
		{72.49, 72},
	}

	s := openStore(t, NewMemoryBackend())
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.score), func(t *testing.T) {
			s.SetReadiness("m", tt.score)
			got, ok := s.Readiness("m")
			if !ok || got != tt.want {
				t.Errorf("SetReadiness(%v) stored %d (ok=%v), want %d", tt.score, got, ok, tt.want)
			}
		})
	}
}

func TestEnsureReadinessIsPureAndDeterministic(t *testing.T) {
	backend := NewMemoryBackend()
	s := openStore(t, backend)

	ids := []string{"", "a", "5eb87d42ffd86e000604b384", "Starlink 10-12", "ñandú", "🚀"}
	for _, id := range ids {
		first := s.EnsureReadiness(id)
		second := s.EnsureReadiness(id)
		if first != second {
			t.Errorf("EnsureReadiness(%q) not deterministic: %d then %d", id, first, second)
		}
		if first < 70 || first >= 95 {
			t.Errorf("EnsureReadiness(%q) = %d, want in [70,95)", id, first)
		}
		if _, ok := s.Readiness(id); ok {
			t.Errorf("EnsureReadiness(%q) wrote to the store", id)
		}
	}
	if backend.Saves() != 0 {
		t.Errorf("backend saves = %d, want 0", backend.Saves())
	}
}

func TestSeedReadiness(t *testing.T) {
	// "a" = 97, 97 % 25 = 22
	if got := SeedReadiness("a"); got != 92 {
		t.Errorf("SeedReadiness(a) = %d, want 92", got)
	}
	// "ab" = 97+98 = 195, 195 % 25 = 20
	if got := SeedReadiness("ab"); got != 90 {
		t.Errorf("SeedReadiness(ab) = %d, want 90", got)
	}
	if got := SeedReadiness(""); got != 70 {
		t.Errorf("SeedReadiness(\"\") = %d, want 70", got)
	}
}

func TestEnsureReadinessPrefersStored(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	s.SetReadiness("a", 61)
	if got := s.EnsureReadiness("a"); got != 61 {
		t.Errorf("EnsureReadiness(a) = %d, want 61", got)
	}
}

func TestSelectMission(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	s.SelectMission("m-1")
	if got := s.Preferences().Selected(); got != "m-1" {
		t.Errorf("Selected() = %q, want m-1", got)
	}
	s.ClearSelection()
	if p := s.Preferences(); p.SelectedMissionID != nil {
		t.Errorf("SelectedMissionID = %v, want nil", *p.SelectedMissionID)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	backend := NewMemoryBackend()
	s := openStore(t, backend)
	s.TogglePin("a")
	s.TogglePin("b")
	s.SetReadiness("a", 88)
	s.SelectMission("b")

	if backend.Saves() != 4 {
		t.Errorf("saves = %d, want one per mutation (4)", backend.Saves())
	}

	reopened := openStore(t, backend)
	if diff := cmp.Diff(s.Preferences(), reopened.Preferences()); diff != "" {
		t.Errorf("reopened state mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenRepairsInvariants(t *testing.T) {
	backend := NewMemoryBackend()
	blob := `{"pinnedMissionIds":["a","b","a"],"readinessByMission":{"a":20,"b":130,"c":77},"selectedMissionId":null}`
	if err := backend.Save(context.Background(), StoreName, []byte(blob)); err != nil {
		t.Fatal(err)
	}

	s := openStore(t, backend)
	want := models.Preferences{
		PinnedMissionIDs:   []string{"a", "b"},
		ReadinessByMission: map[string]int{"a": 60, "b": 100, "c": 77},
	}
	if diff := cmp.Diff(want, s.Preferences()); diff != "" {
		t.Errorf("Preferences() mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenCorruptBlob(t *testing.T) {
	backend := NewMemoryBackend()
	_ = backend.Save(context.Background(), StoreName, []byte("{not json"))
	if _, err := Open(context.Background(), backend, nil); err == nil {
		t.Error("Open() error = nil, want parse error")
	}
}

type failingBackend struct{ *MemoryBackend }

func (f *failingBackend) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	s := openStore(t, &failingBackend{MemoryBackend: NewMemoryBackend()})
	s.TogglePin("a")
	if !s.IsPinned("a") {
		t.Error("pin lost after failed write")
	}
	if s.PersistErr() == nil {
		t.Error("PersistErr() = nil, want error")
	}
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	var pins []int
	unsubscribe := s.Subscribe(func(p models.Preferences) {
		pins = append(pins, len(p.PinnedMissionIDs))
	})
	s.TogglePin("a")
	s.TogglePin("b")
	s.TogglePin("a")
	unsubscribe()
	s.TogglePin("c")

	if diff := cmp.Diff([]int{1, 2, 1}, pins); diff != "" {
		t.Errorf("notifications (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	s := openStore(t, NewMemoryBackend())
	s.TogglePin("a")
	s.SetReadiness("a", 90)
	s.SelectMission("a")
	s.Reset()
	if diff := cmp.Diff(models.NewPreferences(), s.Preferences()); diff != "" {
		t.Errorf("after Reset (-want +got):\n%s", diff)
	}
}
