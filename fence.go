package jsonrecover

import (
	"regexp"
	"strings"
)

// fencePattern matches a complete markdown code fence. The language tag (group
// 1) is consumed when it starts with a letter and ends the opening line, or
// when it is a bare "json" followed directly by the payload (group 2).
var fencePattern = regexp.MustCompile("(?s)```(?:([A-Za-z][A-Za-z0-9_+.-]*)?[ \\t]*\\r?\\n|(?i:json))?\\s*(.*?)\\s*```")

// stripFences replaces every fenced block with its inner content and trims
// the result. A JSON literal in tag position is kept as content.
func stripFences(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllStringFunc(raw, func(block string) string {
		m := fencePattern.FindStringSubmatch(block)
		switch tag, content := m[1], m[2]; tag {
		case "true", "false", "null":
			return strings.TrimSpace(tag + "\n" + content)
		default:
			return content
		}
	}))
}
