// Package domain defines the types and interfaces for the decisions service
package domain

import (
	"time"

	"hyperflow/internal/core/score"
)

// DecisionWrite is one routing outcome to persist
type DecisionWrite struct {
	DocumentID    string
	ChosenSlug    string
	TotalScore    int
	Tier          score.Tier
	RunnerUpSlugs []string
	Explanation   []score.Entry
	EngineVersion int
	DecidedAt     time.Time
}

// Row is a stored decision as read back from Postgres
type Row struct {
	DocumentID    string        `json:"document_id"`
	ChosenSlug    string        `json:"chosen_slug"`
	TotalScore    int           `json:"total_score"`
	Tier          score.Tier    `json:"tier"`
	RunnerUpSlugs []string      `json:"runner_up_slugs"`
	Explanation   []score.Entry `json:"explanation"`
	EngineVersion int           `json:"engine_version"`
	DecidedAt     time.Time     `json:"decided_at"`
}

// Window defines a time range with a start (Since) and end (Until)
type Window struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// AfterKey is used for pagination when listing decisions
type AfterKey struct {
	DecidedAt  time.Time `json:"decided_at"`
	DocumentID string    `json:"document_id"` // uuid
}

// Filters narrows decision listings and aggregates
type Filters struct {
	Slug    string `json:"slug,omitempty"`
	Tier    string `json:"tier,omitempty" validate:"omitempty,oneof=strong moderate none"`
	Version *int   `json:"engine_version,omitempty"`
}

// ListInput selects stored decisions
type ListInput struct {
	Window  Window   `json:"window"`
	Filters Filters  `json:"filters"`
	After   AfterKey `json:"after"`
	Limit   int      `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" example:"100"`
}

// SlugStatsRow aggregates decisions per chosen project
type SlugStatsRow struct {
	Slug      string  `json:"slug"`
	Decisions int64   `json:"decisions"`
	AvgScore  float64 `json:"avg_score"`
}

// TierStatsRow aggregates decisions per tier
type TierStatsRow struct {
	Tier      string `json:"tier"`
	Decisions int64  `json:"decisions"`
}
