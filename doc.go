// Package jsonrecover recovers a JSON value from text that is supposed to
// contain one but may be wrapped in prose, fenced in a markdown code block, or
// cut off before its closing delimiters, as language models commonly emit.
//
// [Recover] applies an ordered sequence of increasingly aggressive stages and
// returns the value from the first one that produces a strict parse:
//
//  1. markdown fences and surrounding whitespace are stripped;
//  2. the cleaned text is parsed directly;
//  3. the earliest '{' or '[' is located;
//  4. the longest parseable prefix from that point is searched for;
//  5. unterminated objects and arrays are closed and the result parsed;
//  6. the span between the first opener and the last closer is parsed.
//
// A value is never synthesized without passing a real parse. When nothing
// works, the error matches [ErrRecoveryExhausted] and carries a snippet of the
// cleaned text.
//
//	v, err := jsonrecover.Recover("Sure! ```json\n{\"a\": [1, 2, 3\n```")
//	// v == map[string]any{"a": []any{1.0, 2.0, 3.0}}
package jsonrecover
