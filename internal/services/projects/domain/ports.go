package domain

import (
	"context"

	"hyperflow/internal/core/profile"
)

// RegistryPort is the CRUD surface over stored projects
type RegistryPort interface {
	List(ctx context.Context, includeInactive bool) ([]Project, error)
	Get(ctx context.Context, slug string) (Project, error)
	Create(ctx context.Context, in UpsertInput) (Project, error)
	Update(ctx context.Context, slug string, in UpsertInput) (Project, error)
	Deactivate(ctx context.Context, slug string) error
}

// SnapshotPort hands out the current compiled candidate set.
// Snapshot never blocks; Reload rebuilds from storage and swaps atomically
type SnapshotPort interface {
	Snapshot() *profile.Snapshot
	Reload(ctx context.Context) (ReloadReport, error)
}
