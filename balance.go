package jsonrecover

import "slices"

// closers scans candidate once and returns the closing delimiters needed to
// terminate every structure still open at the end, innermost first.
//
// A closer that does not match the innermost open structure is ignored so
// that stray brackets in trailing prose do not abort the scan. String contents
// are not tracked.
func closers(candidate string) []byte {
	var stack []byte
	for i := 0; i < len(candidate); i++ {
		switch c := candidate[i]; c {
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if n := len(stack); n > 0 && stack[n-1] == c {
				stack = stack[:n-1]
			}
		}
	}
	slices.Reverse(stack)
	return stack
}

// balance appends the missing closers to candidate. It reports false when
// nothing was left open.
func balance(candidate string) (string, bool) {
	suffix := closers(candidate)
	if len(suffix) == 0 {
		return "", false
	}
	return candidate + string(suffix), true
}
