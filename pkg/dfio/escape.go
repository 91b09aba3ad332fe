package dfio

import "strings"

// Cell text of string and char columns and column names may contain the
// token separator. Such text is escaped on the wire:
//
//	","  becomes  "<,>"
//	"<"  becomes  "<<>"
//
// The decoder treats a "," preceded by '<' and followed by '>' as part of
// an escape rather than a terminator; that two-byte lookaround is the sole
// tie-breaker of the format.

func escape(s string) string {
	s = strings.ReplaceAll(s, "<", "<<>")
	return strings.ReplaceAll(s, ",", "<,>")
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, "<,>", ",")
	return strings.ReplaceAll(s, "<<>", "<")
}
