package domain

import "context"

// WriterPort accepts new documents into the inbox
type WriterPort interface {
	Submit(ctx context.Context, in SubmitInput) (Document, error)
}

// ReaderPort pages over unrouted documents in arrival order
type ReaderPort interface {
	ListPending(ctx context.Context, in ListInput) (rows []Document, next AfterKey, err error)
	Get(ctx context.Context, id string) (Document, error)
}

// MarkerPort flags documents as routed once a decision is persisted
type MarkerPort interface {
	MarkRouted(ctx context.Context, ids []string) error
}
