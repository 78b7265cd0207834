package checks

import (
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// Registry manages the set of data-quality checks. Every enabled check runs
// on every pass; detection never stops at the first match.
type Registry struct {
	checks  []Check
	mu      sync.RWMutex
	enabled map[string]bool
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		checks:  make([]Check, 0),
		enabled: make(map[string]bool),
	}
}

// DefaultRegistry returns a registry loaded with all cross-feed checks.
func DefaultRegistry(skewOffset, tolerance time.Duration) *Registry {
	r := NewRegistry()
	r.Register(NewFutureTimestampCheck(skewOffset))
	r.Register(NewStaticDurationCheck(tolerance))
	r.Register(NewStatusMismatchCheck())
	r.Register(NewLastEventMismatchCheck(tolerance))
	return r
}

// Register adds a check to the registry, replacing any existing check with
// the same name.
func (r *Registry) Register(check Check) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.checks {
		if existing.Name() == check.Name() {
			r.checks[i] = check
			logDebug(fmt.Sprintf("Registry: Replaced existing check '%s'", check.Name()))
			return
		}
	}

	r.checks = append(r.checks, check)
	r.enabled[check.Name()] = true
}

// EnableCheck enables a specific check
func (r *Registry) EnableCheck(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled[name] = true
}

// DisableCheck disables a specific check
func (r *Registry) DisableCheck(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled[name] = false
}

// IsEnabled checks if a check is enabled
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enabled, exists := r.enabled[name]
	return exists && enabled
}

// Collect runs every enabled check over the input and returns all findings.
func (r *Registry) Collect(input Input) []model.Inconsistency {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Inconsistency, 0)
	for _, check := range r.checks {
		if !r.isEnabledLocked(check.Name()) {
			logDebug(fmt.Sprintf("Registry: Skipping disabled check '%s'", check.Name()))
			continue
		}

		found := check.Run(input)
		if len(found) > 0 {
			logDebug(fmt.Sprintf("Registry: Check '%s' flagged %d inconsistencies", check.Name(), len(found)))
			all = append(all, found...)
		}
	}
	return all
}

func (r *Registry) isEnabledLocked(name string) bool {
	enabled, exists := r.enabled[name]
	return exists && enabled
}

// Checks returns a copy of the registered checks.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checks := make([]Check, len(r.checks))
	copy(checks, r.checks)
	return checks
}
