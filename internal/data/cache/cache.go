package cache

import (
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// ResultCache remembers the last reconciled timeline per connection so that
// watch passes can skip redrawing when nothing changed. Comparison uses a
// content fingerprint with the pass-local fields (verification time, status
// determination time) zeroed out.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	fingerprint string
	updatedAt   time.Time
}

// NewResultCache creates an empty result cache.
func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string]entry),
	}
}

// Update stores the timeline's fingerprint and reports whether it differs
// from the previously stored one. The first update for a connection always
// counts as changed.
func (c *ResultCache) Update(connectionID string, timeline model.Timeline) bool {
	fp := fingerprint(timeline)

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.entries[connectionID]; ok && fp != "" && prev.fingerprint == fp {
		return false
	}
	c.entries[connectionID] = entry{fingerprint: fp, updatedAt: time.Now()}
	return true
}

// Clear drops all cached fingerprints.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of tracked connections.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// fingerprint serializes the timeline with the fields that change on every
// pass zeroed, so only semantic changes invalidate the cache. A marshal
// failure yields an empty fingerprint, which never matches.
func fingerprint(timeline model.Timeline) string {
	timeline.LastVerified = time.Time{}
	timeline.CurrentStatus.DeterminedAt = time.Time{}

	data, err := sonic.Marshal(timeline)
	if err != nil {
		return ""
	}
	return string(data)
}
