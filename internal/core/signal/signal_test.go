package signal

import (
	"testing"
)

func needles(ss ...string) []Needle {
	out := make([]Needle, 0, len(ss))
	for _, s := range ss {
		out = append(out, Needle{Raw: s, Norm: s})
	}
	return out
}

func TestExtract_WholeWordBoundaries(t *testing.T) {
	set := NeedleSet{Aliases: needles("oc")}

	if got := Extract("allocation strategy", set); len(got) != 0 {
		t.Fatalf("'oc' must not match inside 'allocation': %+v", got)
	}

	got := Extract("the oc team called", set)
	if len(got) != 1 || got[0].Category != Alias || got[0].Matched != "oc" {
		t.Fatalf("expected alias match for 'oc', got %+v", got)
	}
}

func TestExtract_HyphenIsBoundary(t *testing.T) {
	set := NeedleSet{Aliases: needles("oc-labs")}
	got := Extract("and oc-labs will follow up", set)
	if len(got) != 1 || got[0].Matched != "oc-labs" {
		t.Fatalf("expected hyphenated alias to match, got %+v", got)
	}
}

func TestExtract_UnderscoreIsNotBoundary(t *testing.T) {
	// Pc runes count as word chars, so "oc" inside "oc_labs" is embedded
	set := NeedleSet{Aliases: needles("oc")}
	if got := Extract("see oc_labs for details", set); len(got) != 0 {
		t.Fatalf("'oc' must not match inside 'oc_labs': %+v", got)
	}
}

func TestExtract_PresencePerCategory(t *testing.T) {
	set := NeedleSet{Keywords: needles("attestation", "governance", "schema")}
	got := Extract("attestation and governance and schema work", set)
	if len(got) != 1 {
		t.Fatalf("keyword category must fire at most once, got %d matches", len(got))
	}
	if got[0].Matched != "attestation" {
		t.Fatalf("first listed keyword should win the explanation slot, got %q", got[0].Matched)
	}
}

func TestExtract_CategoriesNeverMerge(t *testing.T) {
	// the same literal listed as both name and keyword counts in both categories
	set := NeedleSet{
		ProjectName: needles("atlas"),
		Keywords:    needles("atlas"),
	}
	got := Extract("the atlas kickoff", set)
	if len(got) != 2 {
		t.Fatalf("expected both categories to fire independently, got %+v", got)
	}
	if got[0].Category != ProjectName || got[1].Category != Keyword {
		t.Fatalf("expected fixed descending-weight order, got %+v", got)
	}
}

func TestExtract_OrderIsDescendingWeight(t *testing.T) {
	set := NeedleSet{
		ProjectName: needles("atlas"),
		Aliases:     needles("atl"),
		TeamMembers: needles("ben"),
		Keywords:    needles("mapping"),
	}
	got := Extract("ben said mapping for atl and atlas", set)
	want := [4]Category{ProjectName, Alias, TeamMember, Keyword}
	if len(got) != 4 {
		t.Fatalf("expected all four categories, got %+v", got)
	}
	for i, m := range got {
		if m.Category != want[i] {
			t.Fatalf("position %d: got %s want %s", i, m.Category, want[i])
		}
	}
}

func TestExtract_EmptyInputs(t *testing.T) {
	set := NeedleSet{Keywords: needles("attestation")}
	if got := Extract("", set); got != nil {
		t.Fatalf("empty doc must yield no matches, got %+v", got)
	}
	if got := Extract("some text", NeedleSet{}); got != nil {
		t.Fatalf("empty needle set must yield no matches, got %+v", got)
	}
}
