package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/presentation/layout"
	"github.com/penwyp/go-link-monitor/internal/util"
)

const timestampLayout = "2006-01-02 15:04:05"

// TableFormatter renders the timeline as a plain-text report for the
// terminal. Corrected events are marked so corrections stay visible.
type TableFormatter struct {
	writer io.Writer
	tp     *util.TimeProvider
	sizer  layout.Sizer
}

// NewTableFormatter creates a table formatter writing to w.
func NewTableFormatter(w io.Writer, tp *util.TimeProvider) *TableFormatter {
	return &TableFormatter{writer: w, tp: tp}
}

// Format renders the full report: header, event table, inconsistencies, gaps.
func (f *TableFormatter) Format(timeline model.Timeline) error {
	f.printHeader(timeline)
	f.printEvents(timeline.Events)
	f.printInconsistencies(timeline.Inconsistencies)
	f.printGaps(timeline.Gaps)
	return nil
}

func (f *TableFormatter) printHeader(timeline model.Timeline) {
	status := timeline.CurrentStatus
	sources := "none"
	if len(status.Sources) > 0 {
		sources = strings.Join(status.Sources, ", ")
	}

	fmt.Fprintf(f.writer, "Connection %s: %s (%s confidence, sources: %s)\n",
		timeline.ConnectionID, status.Status, status.Confidence, sources)
	fmt.Fprintf(f.writer, "Confidence score %d/100, last verified %s\n\n",
		timeline.ConfidenceScore, f.tp.Format(timeline.LastVerified, timestampLayout))
}

func (f *TableFormatter) printEvents(events []model.Event) {
	if len(events) == 0 {
		fmt.Fprintln(f.writer, "No events recorded.")
		return
	}

	headers := []string{"Time", "Event", "Source", "Confidence", "Details"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			f.tp.Format(e.Timestamp, timestampLayout),
			e.Type,
			e.Source,
			e.Confidence,
			f.eventDetails(e),
		})
	}

	widths := f.columnWidths(headers, rows)
	f.printRow(headers, widths)
	f.printSeparator(widths)
	for _, row := range rows {
		f.printRow(row, widths)
	}
}

func (f *TableFormatter) eventDetails(e model.Event) string {
	parts := make([]string, 0, 4)
	if e.Meta.SessionID != "" {
		parts = append(parts, "session="+e.Meta.SessionID)
	}
	if e.Meta.DurationSeconds > 0 {
		parts = append(parts, "duration="+util.FormatDuration(time.Duration(e.Meta.DurationSeconds)*time.Second))
	}
	if e.Meta.Reason != "" && e.Meta.Reason != model.Unknown {
		parts = append(parts, "reason="+e.Meta.Reason)
	}
	if e.Meta.DetectionMethod != "" {
		parts = append(parts, "via="+e.Meta.DetectionMethod)
	}
	if e.Meta.Age != "" {
		parts = append(parts, e.Meta.Age)
	}
	if e.Meta.TimestampCorrected || e.Meta.DurationCorrected {
		parts = append(parts, "[corrected]")
	}
	return strings.Join(parts, " ")
}

func (f *TableFormatter) printInconsistencies(inconsistencies []model.Inconsistency) {
	if len(inconsistencies) == 0 {
		return
	}
	fmt.Fprintf(f.writer, "\nInconsistencies (%d):\n", len(inconsistencies))
	for _, inc := range inconsistencies {
		fmt.Fprintf(f.writer, "  - [%s] %s\n", inc.Kind, inc.Description)
	}
}

func (f *TableFormatter) printGaps(gaps []model.Gap) {
	if len(gaps) == 0 {
		return
	}
	fmt.Fprintf(f.writer, "\nGaps (%d):\n", len(gaps))
	for _, gap := range gaps {
		fmt.Fprintf(f.writer, "  - %s between %s and %s\n",
			util.FormatHours(gap.DurationHours),
			f.tp.Format(gap.Start, timestampLayout),
			f.tp.Format(gap.End, timestampLayout))
	}
}

func (f *TableFormatter) columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = f.sizer.DisplayWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := f.sizer.DisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Keep the details column within the terminal.
	total := 0
	for i := 0; i < len(widths)-1; i++ {
		total += widths[i] + 2
	}
	maxDetails := f.sizer.TerminalWidth() - total
	if maxDetails < 10 {
		maxDetails = 10
	}
	last := len(widths) - 1
	if widths[last] > maxDetails {
		widths[last] = maxDetails
	}
	return widths
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			parts[i] = f.sizer.Truncate(cell, widths[i])
			continue
		}
		parts[i] = f.sizer.PadString(cell, widths[i], true)
	}
	fmt.Fprintln(f.writer, strings.TrimRight(strings.Join(parts, "  "), " "))
}

func (f *TableFormatter) printSeparator(widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(f.writer, strings.Join(parts, "  "))
}
