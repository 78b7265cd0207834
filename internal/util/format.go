package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "2h 5m" / "12m" / "45s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

// FormatAge renders how long ago something happened, e.g. "5m ago".
func FormatAge(seconds int64) string {
	if seconds <= 0 {
		return "just now"
	}
	return FormatDuration(time.Duration(seconds)*time.Second) + " ago"
}

// FormatHours renders a fractional hour count, e.g. "3.0h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.1fGB", float64(n)/(1024*1024*1024))
	}
}
