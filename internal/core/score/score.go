// Package score converts per-category signal matches into weighted project scores
package score

import (
	"hyperflow/internal/core/profile"
	"hyperflow/internal/core/signal"
)

// Fixed signal weights, awarded once per category when present
const (
	WeightProjectName = 5
	WeightAlias       = 4
	WeightTeamMember  = 3
	WeightKeyword     = 2
)

// Tier thresholds, inclusive lower bounds
const (
	ThresholdStrong   = 8
	ThresholdModerate = 4
)

// Tier is the coarse confidence bucket derived from a score
type Tier string

const (
	// TierStrong means the document almost certainly belongs to the project
	TierStrong Tier = "strong"
	// TierModerate means plausible but worth a human glance
	TierModerate Tier = "moderate"
	// TierNone means not enough evidence to qualify
	TierNone Tier = "none"
)

// Weight returns the points a category is worth
func Weight(c signal.Category) int {
	switch c {
	case signal.ProjectName:
		return WeightProjectName
	case signal.Alias:
		return WeightAlias
	case signal.TeamMember:
		return WeightTeamMember
	case signal.Keyword:
		return WeightKeyword
	}
	return 0
}

// Classify maps a total score to its confidence tier
func Classify(total int) Tier {
	switch {
	case total >= ThresholdStrong:
		return TierStrong
	case total >= ThresholdModerate:
		return TierModerate
	default:
		return TierNone
	}
}

// Entry is one explanation line: which signal fired, on what string, for how many points
type Entry struct {
	Signal  signal.Category `json:"signal"`
	Matched string          `json:"matched"`
	Points  int             `json:"points"`
}

// Result is one candidate's scoring outcome
type Result struct {
	Slug        string
	Total       int
	Tier        Tier
	Explanation []Entry
}

// HasProjectName reports whether the explicit project name signal fired
func (r Result) HasProjectName() bool {
	for _, e := range r.Explanation {
		if e.Signal == signal.ProjectName {
			return true
		}
	}
	return false
}

// SignalCount returns the number of distinct categories that fired
func (r Result) SignalCount() int { return len(r.Explanation) }

// Candidate scores one compiled candidate against a normalized document.
// Explanation entries come out in descending weight order because extraction
// iterates categories in that fixed order
func Candidate(doc string, c profile.Candidate) Result {
	matches := signal.Extract(doc, c.Needles)
	res := Result{Slug: c.Slug}
	if len(matches) > 0 {
		res.Explanation = make([]Entry, 0, len(matches))
	}
	for _, m := range matches {
		pts := Weight(m.Category)
		res.Total += pts
		res.Explanation = append(res.Explanation, Entry{
			Signal:  m.Category,
			Matched: m.Matched,
			Points:  pts,
		})
	}
	res.Tier = Classify(res.Total)
	return res
}

// All scores every candidate in the snapshot against a normalized document.
// Order follows snapshot load order, selection is the router's job.
// An empty candidate list yields an empty result list, not an error
func All(doc string, snap *profile.Snapshot) []Result {
	cands := snap.Candidates()
	if len(cands) == 0 {
		return nil
	}
	out := make([]Result, 0, len(cands))
	for _, c := range cands {
		out = append(out, Candidate(doc, c))
	}
	return out
}
