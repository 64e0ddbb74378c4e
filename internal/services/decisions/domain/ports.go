package domain

import "context"

// WriterPort persists routing decisions
type WriterPort interface {
	// WriteBatch persists a batch of decisions, skipping any
	// (document_id, engine_version) pair already stored
	WriteBatch(ctx context.Context, xs []DecisionWrite) error
}

// QueryPort reads stored decisions and aggregates
type QueryPort interface {
	List(ctx context.Context, in ListInput) (rows []Row, next AfterKey, err error)
	StatsBySlug(ctx context.Context, w Window, f Filters) ([]SlugStatsRow, error)
	StatsByTier(ctx context.Context, w Window, f Filters) ([]TierStatsRow, error)
}
