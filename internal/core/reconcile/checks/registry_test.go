package checks

import (
	"testing"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

type stubCheck struct {
	BaseCheck
	findings []model.Inconsistency
}

func (c *stubCheck) Run(Input) []model.Inconsistency {
	return c.findings
}

func TestRegistryRunsAllChecks(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubCheck{
		BaseCheck: NewBaseCheck("first", ""),
		findings:  []model.Inconsistency{{Kind: "first"}},
	})
	r.Register(&stubCheck{
		BaseCheck: NewBaseCheck("second", ""),
		findings:  []model.Inconsistency{{Kind: "second"}},
	})

	found := r.Collect(Input{Now: checkNow()})

	require.Len(t, found, 2, "detection never stops at the first match")
	assert.Equal(t, "first", found[0].Kind)
	assert.Equal(t, "second", found[1].Kind)
}

func TestRegistryDisableAndEnable(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubCheck{
		BaseCheck: NewBaseCheck("noisy", ""),
		findings:  []model.Inconsistency{{Kind: "noisy"}},
	})

	r.DisableCheck("noisy")
	assert.False(t, r.IsEnabled("noisy"))
	assert.Empty(t, r.Collect(Input{Now: checkNow()}))

	r.EnableCheck("noisy")
	assert.True(t, r.IsEnabled("noisy"))
	assert.Len(t, r.Collect(Input{Now: checkNow()}), 1)
}

func TestRegistryReplaceByName(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubCheck{
		BaseCheck: NewBaseCheck("dup", ""),
		findings:  []model.Inconsistency{{Kind: "old"}},
	})
	r.Register(&stubCheck{
		BaseCheck: NewBaseCheck("dup", ""),
		findings:  []model.Inconsistency{{Kind: "new"}},
	})

	require.Len(t, r.Checks(), 1)
	found := r.Collect(Input{Now: checkNow()})
	require.Len(t, found, 1)
	assert.Equal(t, "new", found[0].Kind)
}

func TestDefaultRegistryHasAllChecks(t *testing.T) {
	r := DefaultRegistry(5*time.Minute, time.Minute)

	names := make([]string, 0)
	for _, c := range r.Checks() {
		names = append(names, c.Name())
		assert.True(t, r.IsEnabled(c.Name()))
	}

	assert.ElementsMatch(t, []string{
		model.InconsistencyFutureTimestamp,
		model.InconsistencyStaticDuration,
		model.InconsistencyStatusMismatch,
		model.InconsistencyLastEventMismatch,
	}, names)
}
