package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "meeting notes",
			out:  "meeting notes",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}),
			out:  "foo bar",
		},
		{
			name: "case fold",
			in:   "OpenCivics",
			out:  "opencivics",
		},
		{
			name: "remove zero-widths",
			in:   "o\u200Bc\u200D-labs", // ZERO WIDTH SPACE + ZERO WIDTH JOINER
			out:  "oc-labs",
		},
		{
			name: "remove combining marks",
			in:   "Rene\u0301", // "René" using combining acute accent
			out:  "rene",
		},
		{
			name: "remove marks from precomposed chars",
			in:   "Ren\u00e9", // "René" as a single precomposed code point
			out:  "rene",
		},
		{
			name: "width fold fullwidth",
			in:   "ＢＥＮ called",
			out:  "ben called",
		},
		{
			name: "nfkc ligature",
			in:   "oﬃce hours",
			out:  "office hours",
		},
		{
			name: "digits survive untouched",
			in:   "q4 2025 planning",
			out:  "q4 2025 planning",
		},
		{
			name: "collapse whitespace",
			in:   "  a\t b   c  ",
			out:  "a b c",
		},
		{
			name: "whitespace runs with newline collapse to newline",
			in:   "line one \n\n  line two",
			out:  "line one\nline two",
		},
		{
			name: "controls stripped",
			in:   "a\x00b\x07c",
			out:  "abc",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
		{
			name: "whitespace only",
			in:   " \t\n ",
			out:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

// Both unicode spellings of an accented name must land on the same form,
// so a profile needle matches documents regardless of how they were typed.
func TestNormalize_AccentFormsAgree(t *testing.T) {
	n := New()
	composed := n.Normalize("Ren\u00e9 joined the call")
	combining := n.Normalize("Rene\u0301 joined the call")
	if composed != combining {
		t.Fatalf("composed %q != combining %q", composed, combining)
	}
	if composed != "rene joined the call" {
		t.Fatalf("normalized form = %q, want %q", composed, "rene joined the call")
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	n := New()
	in := "Benjamin mentioned the OpenCivics team\u200B and oc-labs"
	first := n.Normalize(in)
	for i := 0; i < 10; i++ {
		if got := n.Normalize(in); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
}

func TestSanitize_FastPathIdentity(t *testing.T) {
	in := "plain text stays identical"
	if got := Sanitize(in); got != in {
		t.Fatalf("Sanitize changed clean input: %q", got)
	}
}
