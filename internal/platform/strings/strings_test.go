package strings

import (
	"testing"

	kit "hyperflow/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %#v, want default", got)
	}
	if got := IfEmpty([]string{}, def); len(got) != 1 {
		t.Fatalf("IfEmpty(empty) = %#v, want default", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 || got[0] != "x" {
		t.Fatalf("IfEmpty(non-empty) = %#v, want input", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "field"); got != "ok" {
		t.Fatalf("MustString = %q, want %q", got, "ok")
	}
	kit.MustPanic(t, func() { _ = MustString("", "field") })
	kit.MustPanic(t, func() { _ = MustString("   ", "field") })
}

func TestMustPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"projects", "/projects"},
		{"/projects", "/projects"},
		{"projects/", "/projects"},
		{" /projects/ ", "/projects"},
		{"//route//", "/route"},
	}
	for _, tc := range cases {
		if got := MustPrefix(tc.in); got != tc.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	kit.MustPanic(t, func() { _ = MustPrefix("") })
	kit.MustPanic(t, func() { _ = MustPrefix("  / ") })
}

func TestPtrDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("v")
	if p == nil || *p != "v" {
		t.Fatalf("Ptr(\"v\") = %v", p)
	}
	if got := Deref(nil); got != "" {
		t.Fatalf("Deref(nil) = %q, want empty", got)
	}
	if got := Deref(p); got != "v" {
		t.Fatalf("Deref = %q, want %q", got, "v")
	}
}

func TestSQLNull(t *testing.T) {
	if got := SQLNull(""); got != nil {
		t.Fatalf("SQLNull(\"\") = %v, want nil", got)
	}
	if got := SQLNull("  "); got != nil {
		t.Fatalf("SQLNull(blank) = %v, want nil", got)
	}
	if got := SQLNull("x"); got != "x" {
		t.Fatalf("SQLNull(\"x\") = %v, want \"x\"", got)
	}
}

func TestDedup(t *testing.T) {
	if got := Dedup(nil); got != nil {
		t.Fatalf("Dedup(nil) = %#v, want nil", got)
	}
	got := Dedup([]string{" a", "b", "a", "", "  ", "b ", "c"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Dedup len = %d, want %d (%#v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dedup[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
