package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Sizer handles display-width math for terminal output.
type Sizer struct{}

// DisplayWidth calculates the actual display width of a string containing
// Unicode characters.
func (s Sizer) DisplayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// PadString pads a string to a specific display width.
func (s Sizer) PadString(str string, width int, leftAlign bool) string {
	actualWidth := s.DisplayWidth(str)
	if actualWidth >= width {
		return str
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return str + padding
	}
	return padding + str
}

// TerminalWidth returns the terminal width with a fallback for
// non-interactive output.
func (s Sizer) TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 60 {
		return 100
	}
	return width
}

// Truncate shortens a string to the given display width, appending "..."
// when content was cut.
func (s Sizer) Truncate(str string, width int) string {
	if s.DisplayWidth(str) <= width {
		return str
	}
	if width <= 3 {
		return runewidth.Truncate(str, width, "")
	}
	return runewidth.Truncate(str, width, "...")
}
