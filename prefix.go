package jsonrecover

import "charm.land/jsonrecover/internal/jsonext"

// longestPrefix returns the longest prefix of candidate that parses.
//
// The candidate starts with '{' or '[', so a parseable prefix ends with the
// matching closer or with whitespace after it. Only closer-terminated ends are
// tried: a longer whitespace-terminated prefix decodes to the same value.
func longestPrefix(candidate string, useNumber bool) (any, string, bool) {
	for end := len(candidate); end > 0; end-- {
		if c := candidate[end-1]; c != '}' && c != ']' {
			continue
		}
		prefix := candidate[:end]
		v, err := jsonext.Decode(prefix, useNumber)
		if err != nil {
			continue
		}
		return v, prefix, true
	}
	return nil, "", false
}
