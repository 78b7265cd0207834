package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// The history backends disagree on types as much as on field names: the same
// field arrives as a string from one source and a number from another, and
// absent fields show up as null. The Flex* types absorb all of that during
// decoding so the normalizer only ever sees usable zero values.

// FlexString coerces strings, numbers and booleans to a string; null, objects
// and arrays collapse to the empty string.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*s = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var v string
		if err := sonic.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = FlexString(v)
	case '{', '[':
		*s = ""
	default:
		*s = FlexString(trimmed)
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexInt coerces numbers and numeric strings to int64; anything else is 0.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*i = 0
		return nil
	}
	if trimmed[0] == '"' {
		var v string
		if err := sonic.Unmarshal(data, &v); err == nil {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				*i = FlexInt(int64(f))
				return nil
			}
		}
		*i = 0
		return nil
	}
	var f float64
	if err := sonic.Unmarshal(data, &f); err != nil {
		*i = 0
		return nil
	}
	*i = FlexInt(int64(f))
	return nil
}

// FlexFloat coerces numbers and numeric strings to float64; anything else is 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*f = 0
		return nil
	}
	if trimmed[0] == '"' {
		var v string
		if err := sonic.Unmarshal(data, &v); err == nil {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				*f = FlexFloat(parsed)
				return nil
			}
		}
		*f = 0
		return nil
	}
	var parsed float64
	if err := sonic.Unmarshal(data, &parsed); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(parsed)
	return nil
}

// timeLayouts are the timestamp formats observed across the three feeds.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// FlexTime parses timestamps in any of the known feed layouts, or as unix
// seconds. Raw preserves the original literal so corrections stay auditable.
// An unparseable or absent value leaves Time at its zero value.
type FlexTime struct {
	Time time.Time
	Raw  string
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*t = FlexTime{}
		return nil
	}
	if trimmed[0] == '"' {
		var v string
		if err := sonic.Unmarshal(data, &v); err != nil {
			*t = FlexTime{}
			return nil
		}
		*t = ParseFlexTime(v)
		return nil
	}
	var f float64
	if err := sonic.Unmarshal(data, &f); err != nil {
		*t = FlexTime{}
		return nil
	}
	t.Raw = trimmed
	t.Time = time.Unix(int64(f), 0).UTC()
	return nil
}

// ParseFlexTime parses a timestamp string, trying each known layout.
func ParseFlexTime(value string) FlexTime {
	ft := FlexTime{Raw: value}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			ft.Time = parsed
			return ft
		}
	}
	return ft
}

// IsZero reports whether no usable timestamp was decoded.
func (t FlexTime) IsZero() bool {
	return t.Time.IsZero()
}
