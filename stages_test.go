package jsonrecover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json tag on its own line", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no tag", "```\n[1, 2]\n```", `[1, 2]`},
		{"inline json tag", "```json {\"a\": 1}```", `{"a": 1}`},
		{"uppercase inline tag", "```JSON {\"a\": 1}```", `{"a": 1}`},
		{"other language tag", "```python\nprint(1)\n```", `print(1)`},
		{"carriage returns", "```json\r\n{\"a\": 1}\r\n```", `{"a": 1}`},
		{"surrounding prose", "before ```json\n{}\n``` after", "before {} after"},
		{"two fences", "```json\n{}\n```\n```json\n[]\n```", "{}\n[]"},
		{"unterminated fence kept", "```json\n{\"a\": 1", "```json\n{\"a\": 1"},
		{"whitespace only trimmed", "  \n{\"a\": 1}\t ", `{"a": 1}`},
		{"empty fence", "```json\n```", ""},
		{"literal true on opening line", "```true\n```", "true"},
		{"literal null on opening line", "```null\n```", "null"},
		{"number on opening line", "```123\n```", "123"},
		{"negative number on opening line", "```-1.5\n```", "-1.5"},
		{"literal followed by content", "```false\n[1]\n```", "false\n[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, stripFences(tt.input))
		})
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("object after prose", func(t *testing.T) {
		offset, candidate, ok := locate(`abc {"x": 1`)
		require.True(t, ok)
		require.Equal(t, 4, offset)
		require.Equal(t, `{"x": 1`, candidate)
	})

	t.Run("array before object", func(t *testing.T) {
		offset, candidate, ok := locate("a [1] {")
		require.True(t, ok)
		require.Equal(t, 2, offset)
		require.Equal(t, "[1] {", candidate)
	})

	t.Run("trailing whitespace trimmed", func(t *testing.T) {
		offset, candidate, ok := locate("x [ 1 ]  \n")
		require.True(t, ok)
		require.Equal(t, 2, offset)
		require.Equal(t, "[ 1 ]", candidate)
	})

	t.Run("none", func(t *testing.T) {
		_, _, ok := locate("no structure here")
		require.False(t, ok)
	})
}

func TestLongestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidate  string
		wantPrefix string
		want       any
	}{
		{
			name:       "trailing prose",
			candidate:  "{\"a\": 1}\nHope this helps!",
			wantPrefix: `{"a": 1}`,
			want:       map[string]any{"a": 1.0},
		},
		{
			name:       "second document ignored",
			candidate:  `[1, 2] and [3]`,
			wantPrefix: `[1, 2]`,
			want:       []any{1.0, 2.0},
		},
		{
			name:       "stray closer after value",
			candidate:  `{"a": {"b": 1}} extra}`,
			wantPrefix: `{"a": {"b": 1}}`,
			want:       map[string]any{"a": map[string]any{"b": 1.0}},
		},
		{
			name:       "closer inside trailing text",
			candidate:  `{"a": [1]} see [note]`,
			wantPrefix: `{"a": [1]}`,
			want:       map[string]any{"a": []any{1.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, prefix, ok := longestPrefix(tt.candidate, false)
			require.True(t, ok)
			require.Equal(t, tt.wantPrefix, prefix)
			require.Equal(t, tt.want, v)
		})
	}

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		_, _, ok := longestPrefix(`{"a": [1, 2`, false)
		require.False(t, ok)
	})
}

func TestClosers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"object with open array", `{"a": [1, 2, 3`, "]}"},
		{"interleaved", `[{"a": 1}, {"b": [`, "]}]"},
		{"balanced", `[1]`, ""},
		{"stray closer with empty stack", `] {"a": 1`, "}"},
		{"mismatched closer ignored", `{"a": 1]`, "}"},
		{"closer inside string ignored", `{"note": "a]b", "list": [1`, "]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, string(closers(tt.candidate)))
		})
	}
}

func TestBalance(t *testing.T) {
	t.Parallel()

	balanced, ok := balance(`{"a": [1, 2, 3`)
	require.True(t, ok)
	require.Equal(t, `{"a": [1, 2, 3]}`, balanced)

	_, ok = balance(`{"a": 1}`)
	require.False(t, ok)
}

func TestGreedySpans(t *testing.T) {
	t.Parallel()

	t.Run("object and array", func(t *testing.T) {
		spans := greedySpans("x {a} [b]\n{c} y")
		require.Equal(t, []span{
			{offset: 2, text: "{a} [b]\n{c}"},
			{offset: 6, text: "[b]"},
		}, spans)
	})

	t.Run("array only", func(t *testing.T) {
		spans := greedySpans("see [1, 2]")
		require.Equal(t, []span{{offset: 4, text: "[1, 2]"}}, spans)
	})

	t.Run("opener without closer", func(t *testing.T) {
		require.Empty(t, greedySpans(`{"a": 1`))
	})
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hé", snippet("héllo", 2))
	require.Equal(t, "abc", snippet("abc", 10))
	require.Equal(t, "", snippet("", 3))
}
