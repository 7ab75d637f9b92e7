package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when the terminal size cannot be determined
	DefaultWidth = 80

	wrapMargin = 5
)

// TerminalWidth returns the column count of stdout, or DefaultWidth.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// wrapLines re-wraps every line whose visible width exceeds width minus the
// margin. Continuation lines keep the original indentation unless the
// indentation alone leaves no room, in which case it is dropped.
func wrapLines(text string, width int) string {
	limit := width - wrapMargin
	if limit < 1 {
		limit = 1
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if ansi.StringWidth(line) <= limit {
			out = append(out, line)
			continue
		}

		content := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(content)]
		if len(indent) >= limit {
			indent = ""
		}

		for _, part := range breakLine(content, limit-len(indent)) {
			out = append(out, indent+part)
		}
	}

	return strings.Join(out, "\n")
}

// breakLine splits s into pieces no wider than limit cells. Each break is
// taken at the last space at or before the limit, which is dropped; a
// piece with no such space is hard-cut. Escape sequences are kept.
func breakLine(s string, limit int) []string {
	var parts []string
	for {
		total := ansi.StringWidth(s)
		if total <= limit {
			return append(parts, s)
		}

		space, fit, first, col := -1, 0, 0, 0
		for _, r := range ansi.Strip(s) {
			if col > limit {
				break
			}
			w := ansi.StringWidth(string(r))
			if col == 0 {
				first = w
			}
			if col > 0 && r == ' ' {
				space = col
			}
			if col+w <= limit {
				fit = col + w
			}
			col += w
		}

		switch {
		case space > 0:
			parts = append(parts, ansi.Cut(s, 0, space))
			s = ansi.Cut(s, space+1, total)
		default:
			if fit == 0 {
				fit = max(first, 1)
			}
			parts = append(parts, ansi.Cut(s, 0, fit))
			s = ansi.Cut(s, fit, total)
		}
	}
}
