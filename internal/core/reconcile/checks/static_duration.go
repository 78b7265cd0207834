package checks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/constants"
	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// StaticDurationCheck flags the backend's placeholder-duration defect. Two
// signals fold into a single finding per pass: a session whose reported
// duration is a known placeholder (300 or 240 seconds) while its
// timestamp-derived duration deviates beyond tolerance, and the aggregate
// case where every session reports the identical placeholder value.
type StaticDurationCheck struct {
	BaseCheck
	tolerance time.Duration
}

// NewStaticDurationCheck creates the check with the given deviation tolerance.
func NewStaticDurationCheck(tolerance time.Duration) *StaticDurationCheck {
	if tolerance <= 0 {
		tolerance = constants.StaticDurationTolerance
	}
	return &StaticDurationCheck{
		BaseCheck: NewBaseCheck(model.InconsistencyStaticDuration, "Backend-reported durations stuck on a placeholder constant"),
		tolerance: tolerance,
	}
}

// Run compares reported durations against the corrected sessions.
func (c *StaticDurationCheck) Run(input Input) []model.Inconsistency {
	tolSeconds := int64(c.tolerance / time.Second)

	deviating := make([]string, 0)
	placeholder := int64(0)
	for i, raw := range input.Raw {
		reported := int64(raw.DurationSeconds)
		if !constants.StaticDurationValue(reported) || i >= len(input.Sessions) {
			continue
		}
		s := input.Sessions[i]
		if s.StartTime.IsZero() || s.EndTime.IsZero() {
			continue
		}
		derived := int64(s.EndTime.Sub(s.StartTime).Seconds())
		diff := derived - reported
		if diff < 0 {
			diff = -diff
		}
		if diff > tolSeconds {
			deviating = append(deviating, s.ID)
			placeholder = reported
		}
	}

	// Aggregate signal: every session reporting the identical placeholder
	// value. A single record is not treated as a shared signal.
	allStatic := len(input.Raw) > 1
	for i, raw := range input.Raw {
		reported := int64(raw.DurationSeconds)
		if !constants.StaticDurationValue(reported) {
			allStatic = false
			break
		}
		if i > 0 && reported != int64(input.Raw[0].DurationSeconds) {
			allStatic = false
			break
		}
	}
	if allStatic && placeholder == 0 {
		placeholder = int64(input.Raw[0].DurationSeconds)
	}

	if len(deviating) == 0 && !allStatic {
		return nil
	}

	description := fmt.Sprintf("backend duration appears static at %d seconds", placeholder)
	details := map[string]string{
		"reported_seconds": strconv.FormatInt(placeholder, 10),
	}
	if len(deviating) > 0 {
		details["deviating_sessions"] = strings.Join(deviating, ",")
	}
	if allStatic {
		details["all_sessions_identical"] = "true"
	}

	return []model.Inconsistency{{
		Kind:        model.InconsistencyStaticDuration,
		Description: description,
		Details:     details,
	}}
}
