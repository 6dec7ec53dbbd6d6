package llmsdoc

import "unicode/utf8"

// Ellipsis marks content that was cut short.
const Ellipsis = "..."

// Truncate shortens s to at most n characters and appends Ellipsis when
// anything was cut. Characters are counted as runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + Ellipsis
}

// Prefix returns the first n characters of s without a marker.
func Prefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
