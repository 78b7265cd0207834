package checks

import (
	"testing"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticInput(now time.Time, reported []int64, spans []time.Duration) Input {
	input := Input{Now: now}
	for i, r := range reported {
		start := now.Add(-time.Duration(len(reported)-i) * 2 * time.Hour)
		input.Raw = append(input.Raw, model.RawSession{
			ID:              model.FlexString(string(rune('a' + i))),
			DurationSeconds: model.FlexInt(r),
			StartTime:       model.FlexTime{Time: start},
			EndTime:         model.FlexTime{Time: start.Add(spans[i])},
		})
		input.Sessions = append(input.Sessions, model.Session{
			ID:        string(rune('a' + i)),
			StartTime: start,
			EndTime:   start.Add(spans[i]),
		})
	}
	return input
}

func TestStaticDurationSingleFindingPerPass(t *testing.T) {
	c := NewStaticDurationCheck(time.Minute)
	input := staticInput(checkNow(),
		[]int64{300, 300, 300},
		[]time.Duration{300 * time.Second, 4500 * time.Second, 300 * time.Second})

	found := c.Run(input)

	require.Len(t, found, 1, "deviation and aggregate signals fold into one finding")
	assert.Equal(t, model.InconsistencyStaticDuration, found[0].Kind)
	assert.Equal(t, "300", found[0].Details["reported_seconds"])
	assert.Equal(t, "b", found[0].Details["deviating_sessions"])
	assert.Equal(t, "true", found[0].Details["all_sessions_identical"])
}

func TestStaticDurationAllIdenticalWithoutDeviation(t *testing.T) {
	c := NewStaticDurationCheck(time.Minute)
	input := staticInput(checkNow(),
		[]int64{240, 240},
		[]time.Duration{240 * time.Second, 250 * time.Second})

	found := c.Run(input)

	require.Len(t, found, 1)
	assert.Equal(t, "true", found[0].Details["all_sessions_identical"])
	assert.NotContains(t, found[0].Details, "deviating_sessions")
}

func TestStaticDurationHonestDurationsPass(t *testing.T) {
	c := NewStaticDurationCheck(time.Minute)
	input := staticInput(checkNow(),
		[]int64{1234, 5678},
		[]time.Duration{1234 * time.Second, 5678 * time.Second})

	assert.Empty(t, c.Run(input))
}

func TestStaticDurationSingleSessionNotAggregate(t *testing.T) {
	c := NewStaticDurationCheck(time.Minute)
	input := staticInput(checkNow(),
		[]int64{300},
		[]time.Duration{300 * time.Second})

	assert.Empty(t, c.Run(input), "one matching record is not a shared-placeholder signal")
}

func TestStaticDurationWithinTolerance(t *testing.T) {
	c := NewStaticDurationCheck(time.Minute)
	input := staticInput(checkNow(),
		[]int64{300, 7200},
		[]time.Duration{340 * time.Second, 7200 * time.Second})

	assert.Empty(t, c.Run(input), "a 40s deviation is inside the 60s tolerance")
}
