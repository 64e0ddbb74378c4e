// Package profile compiles raw project definitions into immutable matching snapshots
package profile

import (
	pstrings "hyperflow/internal/platform/strings"

	"hyperflow/internal/core/normalize"
	"hyperflow/internal/core/signal"
)

// Profile is one raw routing candidate as the configuration layer hands it over
type Profile struct {
	Slug        string   `json:"slug"`
	DisplayName string   `json:"display_name"`
	Aliases     []string `json:"aliases,omitempty"`
	TeamMembers []string `json:"team_members,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Candidate is a compiled profile ready for matching
type Candidate struct {
	Slug        string
	DisplayName string
	Needles     signal.NeedleSet
}

// Skip reports a profile excluded at compile time
// skipped profiles are warnings, routing proceeds with the rest
type Skip struct {
	Slug   string
	Reason string
}

// Snapshot is an immutable point-in-time view of all valid candidates.
// Built once, swapped atomically on reload, never mutated in place
type Snapshot struct {
	candidates []Candidate
	bySlug     map[string]int
}

// Candidates returns the compiled candidates in load order
func (s *Snapshot) Candidates() []Candidate {
	if s == nil {
		return nil
	}
	return s.candidates
}

// Lookup returns the candidate for slug
func (s *Snapshot) Lookup(slug string) (Candidate, bool) {
	if s == nil {
		return Candidate{}, false
	}
	i, ok := s.bySlug[slug]
	if !ok {
		return Candidate{}, false
	}
	return s.candidates[i], true
}

// Len returns the number of valid candidates
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.candidates)
}

// Compile validates profiles and builds a Snapshot.
// Invalid profiles (empty slug, empty display name, duplicate slug) are
// skipped with a reason instead of failing the whole load
func Compile(profiles []Profile, n *normalize.Normalizer) (*Snapshot, []Skip) {
	if n == nil {
		n = normalize.New()
	}

	snap := &Snapshot{
		candidates: make([]Candidate, 0, len(profiles)),
		bySlug:     make(map[string]int, len(profiles)),
	}
	var skips []Skip

	for _, p := range profiles {
		if p.Slug == "" {
			skips = append(skips, Skip{Slug: p.Slug, Reason: "empty slug"})
			continue
		}
		if p.DisplayName == "" {
			skips = append(skips, Skip{Slug: p.Slug, Reason: "empty display name"})
			continue
		}
		if _, dup := snap.bySlug[p.Slug]; dup {
			skips = append(skips, Skip{Slug: p.Slug, Reason: "duplicate slug"})
			continue
		}

		c := Candidate{
			Slug:        p.Slug,
			DisplayName: p.DisplayName,
			Needles: signal.NeedleSet{
				ProjectName: compileNeedles([]string{p.DisplayName}, n),
				Aliases:     compileNeedles(p.Aliases, n),
				TeamMembers: compileNeedles(p.TeamMembers, n),
				Keywords:    compileNeedles(p.Keywords, n),
			},
		}
		snap.bySlug[p.Slug] = len(snap.candidates)
		snap.candidates = append(snap.candidates, c)
	}

	return snap, skips
}

// compileNeedles trims, normalizes and dedupes one category's strings.
// Dedupe runs on the normalized form so "OC-Labs" and " oc-labs " collapse
// to one needle; order is preserved so explanations are reproducible run to run
func compileNeedles(raw []string, n *normalize.Normalizer) []signal.Needle {
	trimmed := pstrings.Dedup(raw)
	if len(trimmed) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(trimmed))
	out := make([]signal.Needle, 0, len(trimmed))
	for _, s := range trimmed {
		norm := n.Normalize(s)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, signal.Needle{Raw: s, Norm: norm})
	}
	return out
}
