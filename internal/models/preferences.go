package models

// Preferences is the persisted mission state: pins, readiness and focus
type Preferences struct {
	PinnedMissionIDs   []string       `json:"pinnedMissionIds" yaml:"pinned_mission_ids"`
	ReadinessByMission map[string]int `json:"readinessByMission" yaml:"readiness_by_mission"`
	SelectedMissionID  *string        `json:"selectedMissionId" yaml:"selected_mission_id"`
}

// NewPreferences returns empty preferences with initialized collections
func NewPreferences() Preferences {
	return Preferences{
		PinnedMissionIDs:   []string{},
		ReadinessByMission: map[string]int{},
	}
}

// Clone returns a deep copy
func (p Preferences) Clone() Preferences {
	c := Preferences{
		PinnedMissionIDs:   make([]string, len(p.PinnedMissionIDs)),
		ReadinessByMission: make(map[string]int, len(p.ReadinessByMission)),
	}
	copy(c.PinnedMissionIDs, p.PinnedMissionIDs)
	for k, v := range p.ReadinessByMission {
		c.ReadinessByMission[k] = v
	}
	if p.SelectedMissionID != nil {
		id := *p.SelectedMissionID
		c.SelectedMissionID = &id
	}
	return c
}

// IsPinned reports whether id is in the pinned set
func (p Preferences) IsPinned(id string) bool {
	for _, pinned := range p.PinnedMissionIDs {
		if pinned == id {
			return true
		}
	}
	return false
}

// Selected returns the focused mission id, or "" when nothing is focused
func (p Preferences) Selected() string {
	if p.SelectedMissionID == nil {
		return ""
	}
	return *p.SelectedMissionID
}
