package feed

import (
	"time"

	"github.com/thesavant42/launchdeck/internal/models"
)

// DefaultStaleTime is how long a cache entry may be served by a silent refresh
const DefaultStaleTime = 5 * time.Minute

// CacheEntry is the single in-memory launch cache slot
type CacheEntry struct {
	Launches  []models.Launch
	WrittenAt time.Time
}

// IsFresh reports whether the entry is younger than ttl at now.
// A nil entry is never fresh.
func (e *CacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.WrittenAt) < ttl
}

// Age returns how long ago the entry was written
func (e *CacheEntry) Age(now time.Time) time.Duration {
	if e == nil {
		return 0
	}
	return now.Sub(e.WrittenAt)
}
