package checks

import (
	"fmt"
	"time"

	"github.com/penwyp/go-link-monitor/internal/util"
)

// formatTimestamp formats a timestamp to a readable string
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// formatDuration formats a duration in seconds to a human-readable string
func formatDuration(seconds int64) string {
	hours := float64(seconds) / 3600
	if hours >= 1 {
		return fmt.Sprintf("%.1f hours", hours)
	}
	minutes := float64(seconds) / 60
	return fmt.Sprintf("%.1f minutes", minutes)
}

// Wrapper functions for util package functions

func logDebug(msg string) {
	util.LogDebug(msg)
}
