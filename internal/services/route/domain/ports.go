package domain

import (
	"context"

	decdom "hyperflow/internal/services/decisions/domain"
	inboxdom "hyperflow/internal/services/inbox/domain"
	projectsdom "hyperflow/internal/services/projects/domain"
)

// DeciderPort routes single documents
type DeciderPort interface {
	// Decide routes a stored inbox document, persists the decision and marks it routed
	Decide(ctx context.Context, in DecideInput) (Outcome, error)

	// Preview routes ad-hoc text against the current snapshot without writing anything
	Preview(ctx context.Context, in PreviewInput) (Outcome, error)
}

// RunnerPort is the external port for the batch routing job
type RunnerPort interface {
	RunPending(ctx context.Context) (RunReport, error)
}

// Ports are dependencies injected into the route module
type Ports struct {
	Snapshots projectsdom.SnapshotPort // required
	Inbox     inboxdom.ReaderPort      // required
	Marker    inboxdom.MarkerPort      // required
	Decisions decdom.WriterPort        // required
}
