// Package domain defines the core types and interfaces for the route service
package domain

import (
	"time"

	"hyperflow/internal/core/route"
)

// DecideInput routes one stored inbox document
type DecideInput struct {
	DocumentID string `json:"document_id" validate:"required,uuid4" example:"6e1a7e6e-0d5c-4b8e-9a39-0b6a3a2a6f10"`
}

// PreviewInput routes ad-hoc text without persisting anything
type PreviewInput struct {
	Text string `json:"text" validate:"required,min=1" example:"Benjamin mentioned the OpenCivics rollout"`
}

// Outcome is one routing result as returned to callers
type Outcome struct {
	Decision  route.Decision `json:"decision"`
	DecidedAt time.Time      `json:"decided_at"`
	Persisted bool           `json:"persisted"`
}

// RunReport summarizes one RunPending sweep
type RunReport struct {
	Scanned  int           `json:"scanned"`
	Routed   int           `json:"routed"`
	Pages    int           `json:"pages"`
	Duration time.Duration `json:"-"`
}
