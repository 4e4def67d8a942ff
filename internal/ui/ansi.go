package ui

import (
	"regexp"
	"strings"
	"unicode"
)

// CSI and OSC sequences, the two families a pasted value can smuggle in.
var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)

// Sanitize strips terminal escape sequences and other control characters
// from user input before it is echoed back. Newlines and tabs survive.
func Sanitize(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
