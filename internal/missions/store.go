// Package missions holds the persisted mission preferences: pinned missions,
// readiness scores and the focused mission.
package missions

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/launchdeck/internal/models"
)

// StoreName is the fixed key the preferences blob is saved under
const StoreName = "mission-state"

// Readiness bounds
const (
	MinReadiness = 60
	MaxReadiness = 100
	seedBase     = 70
	seedSpread   = 25
)

// Backend persists the serialized preferences blob
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// Store is the mission preference state container.
// All methods are safe for concurrent use.
type Store struct {
	backend Backend
	logger  *log.Logger

	mu          sync.RWMutex
	prefs       models.Preferences
	persistErr  error
	subscribers map[int]func(models.Preferences)
	nextSubID   int
}

// Open loads the preferences blob from backend. A missing blob yields empty
// preferences.
func Open(ctx context.Context, backend Backend, logger *log.Logger) (*Store, error) {
	s := &Store{
		backend:     backend,
		logger:      logger,
		prefs:       models.NewPreferences(),
		subscribers: make(map[int]func(models.Preferences)),
	}

	blob, ok, err := backend.Load(ctx, StoreName)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", StoreName, err)
	}
	if !ok {
		return s, nil
	}

	prefs, err := decode(blob)
	if err != nil {
		return nil, err
	}
	s.prefs = prefs
	return s, nil
}

// decode parses a blob and re-establishes the store invariants
func decode(blob []byte) (models.Preferences, error) {
	var raw models.Preferences
	if err := json.Unmarshal(blob, &raw); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to parse %s: %w", StoreName, err)
	}

	prefs := models.NewPreferences()
	seen := make(map[string]bool, len(raw.PinnedMissionIDs))
	for _, id := range raw.PinnedMissionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		prefs.PinnedMissionIDs = append(prefs.PinnedMissionIDs, id)
	}
	for id, score := range raw.ReadinessByMission {
		prefs.ReadinessByMission[id] = Clamp(float64(score))
	}
	if raw.SelectedMissionID != nil {
		id := *raw.SelectedMissionID
		prefs.SelectedMissionID = &id
	}
	return prefs, nil
}

// Clamp rounds score to the nearest integer and bounds it to [60,100]
func Clamp(score float64) int {
	if math.IsNaN(score) {
		return MinReadiness
	}
	r := math.Round(score)
	if r < MinReadiness {
		return MinReadiness
	}
	if r > MaxReadiness {
		return MaxReadiness
	}
	return int(r)
}

// SeedReadiness derives the default readiness for id: the sum of its code
// points mod 25, offset by 70. Always in [70,95).
func SeedReadiness(id string) int {
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	return Clamp(float64(seedBase + sum%seedSpread))
}

// Preferences returns a copy of the current state
func (s *Store) Preferences() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.Clone()
}

// IsPinned reports whether id is pinned
func (s *Store) IsPinned(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.IsPinned(id)
}

// Readiness returns the stored score for id, if any
func (s *Store) Readiness(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.prefs.ReadinessByMission[id]
	return score, ok
}

// EnsureReadiness returns the stored score, or the seeded default when none
// is stored. It never writes: render paths call it freely, and explicit
// writes go through SetReadiness.
func (s *Store) EnsureReadiness(id string) int {
	if score, ok := s.Readiness(id); ok {
		return score
	}
	return SeedReadiness(id)
}

// TogglePin pins id when absent and unpins it when present
func (s *Store) TogglePin(id string) {
	s.mutate(func(p *models.Preferences) {
		for i, pinned := range p.PinnedMissionIDs {
			if pinned == id {
				p.PinnedMissionIDs = append(p.PinnedMissionIDs[:i:i], p.PinnedMissionIDs[i+1:]...)
				return
			}
		}
		p.PinnedMissionIDs = append(p.PinnedMissionIDs, id)
	})
}

// SetReadiness stores the clamped score for id
func (s *Store) SetReadiness(id string, score float64) {
	s.mutate(func(p *models.Preferences) {
		p.ReadinessByMission[id] = Clamp(score)
	})
}

// SelectMission focuses id. An empty id clears the focus.
func (s *Store) SelectMission(id string) {
	s.mutate(func(p *models.Preferences) {
		if id == "" {
			p.SelectedMissionID = nil
			return
		}
		p.SelectedMissionID = &id
	})
}

// ClearSelection removes the focused mission
func (s *Store) ClearSelection() {
	s.SelectMission("")
}

// Reset drops every preference
func (s *Store) Reset() {
	s.mutate(func(p *models.Preferences) {
		*p = models.NewPreferences()
	})
}

// Subscribe registers fn to receive the state after every mutation
func (s *Store) Subscribe(fn func(models.Preferences)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// PersistErr returns the error from the most recent write, if it failed
func (s *Store) PersistErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// mutate applies fn, writes the blob through and notifies subscribers.
// Write failures keep the in-memory state and are surfaced via PersistErr.
func (s *Store) mutate(fn func(*models.Preferences)) {
	s.mu.Lock()
	fn(&s.prefs)
	snapshot := s.prefs.Clone()
	subs := make([]func(models.Preferences), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}

	s.persistErr = s.persistLocked(snapshot)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot.Clone())
	}
}

func (s *Store) persistLocked(prefs models.Preferences) error {
	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", StoreName, err)
	}
	if err := s.backend.Save(context.Background(), StoreName, blob); err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to persist preferences", "key", StoreName, "error", err)
		}
		return fmt.Errorf("failed to save %s: %w", StoreName, err)
	}
	if s.logger != nil {
		s.logger.Debug("Persisted preferences", "key", StoreName, "bytes", len(blob))
	}
	return nil
}
