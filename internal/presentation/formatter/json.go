package formatter

import (
	"encoding/json"
	"io"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// JSONFormatter writes the timeline as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format encodes the timeline.
func (f *JSONFormatter) Format(timeline model.Timeline) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(timeline)
}
