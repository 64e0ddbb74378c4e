// Package domain defines core types and interfaces for the document inbox
package domain

import "time"

// Document is one piece of captured text awaiting or past routing
type Document struct {
	ID           string     `json:"id"`
	Source       string     `json:"source"`
	SourceDetail string     `json:"source_detail,omitempty"`
	Text         string     `json:"text"`
	ReceivedAt   time.Time  `json:"received_at"`
	Routed       bool       `json:"routed"`
	RoutedAt     *time.Time `json:"routed_at,omitempty"`
}

// SubmitInput is the ingestion payload
type SubmitInput struct {
	Source       string `json:"source" validate:"required,oneof=transcript note clipping import" example:"transcript"`
	SourceDetail string `json:"source_detail,omitempty" validate:"omitempty,max=300" example:"daily-sync-2026-08-28"`
	Text         string `json:"text" validate:"required,min=1" example:"Benjamin mentioned the OpenCivics rollout"`
}

// AfterKey supports stable keyset pagination over (received_at, id)
type AfterKey struct {
	ReceivedAt time.Time `json:"received_at"`
	ID         string    `json:"id"` // uuid
}

// ListInput selects pending documents
type ListInput struct {
	After AfterKey `json:"after"`
	Limit int      `json:"limit,omitempty" validate:"omitempty,min=1,max=5000" example:"500"`
}
