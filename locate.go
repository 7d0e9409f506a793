package jsonrecover

import "strings"

// locate returns the offset of the earliest '{' or '[' in cleaned and the
// trimmed candidate starting there.
func locate(cleaned string) (int, string, bool) {
	start := strings.IndexAny(cleaned, "{[")
	if start < 0 {
		return -1, "", false
	}
	return start, strings.TrimSpace(cleaned[start:]), true
}
