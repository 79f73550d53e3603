package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI SGR escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the cell length of a string excluding ANSI codes.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// Truncate shortens text to maxWidth cells, appending the ellipsis when it
// had to cut. Returns the text and whether truncation occurred.
func Truncate(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if utf8.RuneCountInString(text) <= maxWidth {
		return text, false
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	return string(runes[:maxWidth-ellipsisLen]) + cfg.Ellipsis, true
}

// TruncateRow shortens the middle of a prefixed row while keeping the prefix
// and suffix intact, e.g. "≡ Some long title..." inside a narrow pane.
func TruncateRow(prefix, text, suffix string, maxWidth int, cfg TextConfig) string {
	combined := prefix + text + suffix
	if utf8.RuneCountInString(combined) <= maxWidth {
		return combined
	}

	overhead := utf8.RuneCountInString(prefix) + utf8.RuneCountInString(suffix) +
		utf8.RuneCountInString(cfg.Ellipsis)
	available := maxWidth - overhead
	if available <= 0 {
		trunc, _ := Truncate(combined, maxWidth, cfg)
		return trunc
	}

	runes := []rune(text)
	return prefix + string(runes[:available]) + cfg.Ellipsis + suffix
}

// PadRight extends s with spaces to exactly width cells. Longer strings are
// returned unchanged.
func PadRight(s string, width int) string {
	for utf8.RuneCountInString(s) < width {
		s += " "
	}
	return s
}
