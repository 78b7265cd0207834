package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		input    time.Duration
		expected string
	}{
		{2*time.Hour + 5*time.Minute, "2h 5m"},
		{12 * time.Minute, "12m"},
		{45 * time.Second, "45s"},
		{0, "0s"},
		{-90 * time.Second, "1m"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatDuration(tc.input))
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "5m ago", FormatAge(300))
	assert.Equal(t, "just now", FormatAge(0))
	assert.Equal(t, "just now", FormatAge(-10))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "3.0h", FormatHours(3.0))
	assert.Equal(t, "1.5h", FormatHours(1.5))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512B", FormatBytes(512))
	assert.Equal(t, "1.0KB", FormatBytes(1024))
	assert.Equal(t, "2.5MB", FormatBytes(int64(2.5*1024*1024)))
	assert.Equal(t, "1.0GB", FormatBytes(1024*1024*1024))
}
