package view

import (
	"reflect"
	"testing"
)

func TestPromptLinesIncludesSuggestions(t *testing.T) {
	state := PromptState{Label: "new", Value: "@a", Cursor: "_", Suggestions: []string{"Ana"}}
	lines := PromptLines(state, 40)

	want := []string{"new> @a_", "     @Ana"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestClampLinesAddsEllipsis(t *testing.T) {
	lines := []string{"one", "two", "three"}
	clamped := ClampLines(lines, 2, 5)
	if len(clamped) != 2 {
		t.Fatalf("clamped length = %d, want 2", len(clamped))
	}
	if clamped[1] != "tw..." {
		t.Fatalf("last line = %q, want %q", clamped[1], "tw...")
	}

	if got := ClampLines(lines, 0, 5); got != nil {
		t.Fatalf("expected nil for zero lines, got %q", got)
	}
}

func TestWrapTextToWidths(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		first  int
		other  int
		expect []string
	}{
		{name: "fits", text: "hello", first: 10, other: 10, expect: []string{"hello"}},
		{name: "word_break", text: "hello there world", first: 11, other: 11, expect: []string{"hello there", "world"}},
		{name: "hard_break", text: "abcdefgh", first: 3, other: 3, expect: []string{"abc", "def", "gh"}},
		{name: "empty", text: "", first: 5, other: 5, expect: []string{""}},
		{name: "zero_width", text: "abc", first: 0, other: 5, expect: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapTextToWidths(tt.text, tt.first, tt.other)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("WrapTextToWidths(%q) = %q, want %q", tt.text, got, tt.expect)
			}
		})
	}
}
