// Package domain defines core types and interfaces for the project registry
package domain

import "time"

// Project is one registered routing destination
type Project struct {
	Slug        string    `json:"slug"`
	DisplayName string    `json:"display_name"`
	Aliases     []string  `json:"aliases"`
	TeamMembers []string  `json:"team_members"`
	Keywords    []string  `json:"keywords"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertInput carries a project create or update payload
type UpsertInput struct {
	Slug        string   `json:"slug" validate:"required,slug,max=120" example:"opencivics"`
	DisplayName string   `json:"display_name" validate:"required,min=1,max=200" example:"OpenCivics"`
	Aliases     []string `json:"aliases,omitempty" validate:"omitempty,dive,min=1,max=200"`
	TeamMembers []string `json:"team_members,omitempty" validate:"omitempty,dive,min=1,max=200"`
	Keywords    []string `json:"keywords,omitempty" validate:"omitempty,dive,min=1,max=200"`
	Active      *bool    `json:"active,omitempty"`
}

// ReloadReport summarizes one snapshot rebuild
type ReloadReport struct {
	Loaded   int           `json:"loaded"`
	Skipped  []SkipDetail  `json:"skipped,omitempty"`
	Duration time.Duration `json:"-"`
}

// SkipDetail reports a profile rejected at compile time
type SkipDetail struct {
	Slug   string `json:"slug"`
	Reason string `json:"reason"`
}
