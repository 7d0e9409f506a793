package jsonrecover

import "regexp"

// greedyPatterns are tried in order against the whole cleaned text. Each
// spans from the first opener to the last closer of its kind, across lines.
var greedyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\{.*\}`),
	regexp.MustCompile(`(?s)\[.*\]`),
}

type span struct {
	offset int
	text   string
}

// greedySpans returns the candidate spans of cleaned, object span first.
func greedySpans(cleaned string) []span {
	var spans []span
	for _, pattern := range greedyPatterns {
		loc := pattern.FindStringIndex(cleaned)
		if loc == nil {
			continue
		}
		spans = append(spans, span{offset: loc[0], text: cleaned[loc[0]:loc[1]]})
	}
	return spans
}
