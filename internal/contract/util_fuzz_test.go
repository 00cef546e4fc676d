package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateText fuzzes TruncateText with random strings and widths.
func FuzzTruncateText(f *testing.F) {
	f.Add("本帮团长排序", 4)
	f.Add("", 0)
	f.Add("abcdef", 3)
	f.Add("a very long player name", 10)

	f.Fuzz(func(t *testing.T, s string, width int) {
		out := TruncateText(s, width)
		if width > 3 && utf8.RuneCountInString(s) > width && len([]rune(out)) != width {
			t.Errorf("TruncateText(%q, %d) = %q, want %d runes", s, width, out, width)
		}
	})
}

// FuzzParseBoolString fuzzes ParseBoolString to make sure it never panics.
func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "1", "0", "TRUE", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(_ *testing.T, s string) {
		_, _ = ParseBoolString(s)
	})
}
