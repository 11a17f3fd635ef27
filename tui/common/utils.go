package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1,234.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Initials returns the first two letters of a username in upper case, used
// where a profile picture cannot be shown.
func Initials(username string) string {
	r := []rune(strings.TrimSpace(username))
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// ClampLines cuts every line of text to at most width cells.
func ClampLines(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Truncate(ln, width, "…")
	}
	return strings.Join(lines, "\n")
}
