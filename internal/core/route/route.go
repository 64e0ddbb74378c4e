// Package route turns scored candidates into a single deterministic routing decision
package route

import (
	"sort"

	"hyperflow/internal/core/normalize"
	"hyperflow/internal/core/profile"
	"hyperflow/internal/core/score"
)

// Version identifies the decision algorithm; bump when weights,
// thresholds or tie-break rules change so decisions stay comparable
const Version = 1

// SlugGeneral is the sentinel slug for documents no project claims
// the filing step maps it to the default bucket
const SlugGeneral = "_general"

// Document is the unit of text being routed, never mutated here
type Document struct {
	ID   string
	Text string
}

// Decision is the immutable outcome of one routing pass
type Decision struct {
	DocumentID    string        `json:"document_id"`
	ChosenSlug    string        `json:"chosen_slug"`
	TotalScore    int           `json:"total_score"`
	Tier          score.Tier    `json:"confidence_tier"`
	RunnerUpSlugs []string      `json:"runner_up_slugs,omitempty"`
	Explanation   []score.Entry `json:"explanation,omitempty"`
	EngineVersion int           `json:"engine_version"`
}

// Engine routes documents against one immutable profile snapshot.
// It is pure and safe for concurrent use; hot reloads swap in a whole
// new Engine rather than mutating this one
type Engine struct {
	snap *profile.Snapshot
	norm *normalize.Normalizer
}

// NewEngine builds an Engine over a compiled snapshot
func NewEngine(snap *profile.Snapshot) *Engine {
	return &Engine{snap: snap, norm: normalize.New()}
}

// Snapshot exposes the profile snapshot this engine routes against
func (e *Engine) Snapshot() *profile.Snapshot { return e.snap }

// Decide produces exactly one Decision for the document.
// Empty documents and empty snapshots fall through to the general bucket,
// they are normal inputs, not errors
func (e *Engine) Decide(doc Document) Decision {
	normText := e.norm.Normalize(doc.Text)
	results := score.All(normText, e.snap)

	// keep only candidates that clear the moderate threshold
	qualified := results[:0:0]
	for _, r := range results {
		if r.Tier != score.TierNone {
			qualified = append(qualified, r)
		}
	}

	if len(qualified) == 0 {
		return Decision{
			DocumentID:    doc.ID,
			ChosenSlug:    SlugGeneral,
			TotalScore:    0,
			Tier:          score.TierNone,
			EngineVersion: Version,
		}
	}

	best := 0
	for _, r := range qualified {
		if r.Total > best {
			best = r.Total
		}
	}

	tied := make([]score.Result, 0, 2)
	for _, r := range qualified {
		if r.Total == best {
			tied = append(tied, r)
		}
	}

	winner := resolveTie(tied)

	runnerUps := make([]string, 0, len(qualified)-1)
	rest := make([]score.Result, 0, len(qualified)-1)
	for _, r := range qualified {
		if r.Slug != winner.Slug {
			rest = append(rest, r)
		}
	}
	// descending score, then slug, so close calls audit the same way every run
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].Total != rest[j].Total {
			return rest[i].Total > rest[j].Total
		}
		return rest[i].Slug < rest[j].Slug
	})
	for _, r := range rest {
		runnerUps = append(runnerUps, r.Slug)
	}

	return Decision{
		DocumentID:    doc.ID,
		ChosenSlug:    winner.Slug,
		TotalScore:    winner.Total,
		Tier:          winner.Tier,
		RunnerUpSlugs: runnerUps,
		Explanation:   winner.Explanation,
		EngineVersion: Version,
	}
}

// resolveTie narrows equal-score candidates to one winner.
// Rules apply in fixed order, stopping at the first that narrows the set:
// 1 explicit project name mention beats none
// 2 more distinct signal categories beats fewer
// 3 lexicographically first slug, so nothing nondeterministic survives
func resolveTie(tied []score.Result) score.Result {
	if len(tied) == 1 {
		return tied[0]
	}

	withName := filterResults(tied, func(r score.Result) bool { return r.HasProjectName() })
	if len(withName) > 0 {
		tied = withName
	}
	if len(tied) == 1 {
		return tied[0]
	}

	maxSignals := 0
	for _, r := range tied {
		if n := r.SignalCount(); n > maxSignals {
			maxSignals = n
		}
	}
	tied = filterResults(tied, func(r score.Result) bool { return r.SignalCount() == maxSignals })
	if len(tied) == 1 {
		return tied[0]
	}

	winner := tied[0]
	for _, r := range tied[1:] {
		if r.Slug < winner.Slug {
			winner = r
		}
	}
	return winner
}

func filterResults(in []score.Result, keep func(score.Result) bool) []score.Result {
	out := make([]score.Result, 0, len(in))
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
