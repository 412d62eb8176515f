package logger

import "strings"

const maxLoggedPathLen = 200

// SanitizePath makes a request path safe for structured logs: control
// characters are stripped and runaway paths are truncated.
func SanitizePath(path string) string {
	var b strings.Builder
	for _, r := range path {
		if r >= 0x20 && r != 0x7f {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > maxLoggedPathLen {
		return s[:maxLoggedPathLen] + "..."
	}
	return s
}
