package telegram

import (
	"strings"
	"testing"
)

func TestSplitAtNewlines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{
			name:   "short text stays whole",
			text:   "hello",
			maxLen: 10,
			want:   []string{"hello"},
		},
		{
			name:   "empty text yields one empty chunk",
			text:   "",
			maxLen: 10,
			want:   []string{""},
		},
		{
			name:   "prefers newline boundary",
			text:   "first line\nsecond line",
			maxLen: 15,
			want:   []string{"first line", "second line"},
		},
		{
			name:   "hard cut when no usable newline",
			text:   strings.Repeat("x", 25),
			maxLen: 10,
			want:   []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := splitAtNewlines(tc.text, tc.maxLen)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d chunks, got %d: %q", len(tc.want), len(got), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("chunk %d: expected %q, got %q", i, tc.want[i], got[i])
				}
				if len(got[i]) > tc.maxLen {
					t.Errorf("chunk %d exceeds limit: %d > %d", i, len(got[i]), tc.maxLen)
				}
			}
		})
	}
}
