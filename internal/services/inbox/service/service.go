// Package service provides the inbox service implementation
package service

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hyperflow/internal/modkit/repokit"
	perr "hyperflow/internal/platform/errors"
	"hyperflow/internal/services/inbox/domain"
	"hyperflow/internal/services/inbox/repo"
)

// Config for the inbox service
type Config struct {
	// HardLimit is the maximum allowed limit per ListPending call; defaults to 1000 if <=0
	HardLimit int
}

// Service implements domain.WriterPort, domain.ReaderPort and domain.MarkerPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new inbox service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if db == nil {
		panic("inbox.Service requires a non nil TxRunner")
	}
	if b == nil {
		panic("inbox.Service requires a non nil Storage binder")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 1000
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// Submit implements domain.WriterPort.
// Empty or whitespace-only text is rejected here; downstream routing
// treats it as unmatched, but storing it would only produce noise
func (s *Service) Submit(ctx context.Context, in domain.SubmitInput) (domain.Document, error) {
	if strings.TrimSpace(in.Text) == "" {
		return domain.Document{}, perr.WithField(perr.Validationf("text must not be blank"), "text")
	}

	d := domain.Document{
		ID:           uuid.NewString(),
		Source:       in.Source,
		SourceDetail: in.SourceDetail,
		Text:         in.Text,
	}
	var out domain.Document
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Insert(ctx, d)
		return err
	})
	if err != nil {
		return domain.Document{}, perr.FromPostgres(err, "inbox submit")
	}
	return out, nil
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id string) (domain.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Document{}, perr.WithField(perr.InvalidArgf("invalid document id"), "id")
	}
	var out domain.Document
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, id)
		return err
	})
	if stderrs.Is(err, pgx.ErrNoRows) {
		return domain.Document{}, perr.NotFoundf("document %q not found", id)
	}
	if err != nil {
		return domain.Document{}, perr.FromPostgres(err, "inbox get")
	}
	return out, nil
}

// ListPending implements domain.ReaderPort
func (s *Service) ListPending(ctx context.Context, in domain.ListInput) ([]domain.Document, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []domain.Document
	var next domain.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).ListPending(ctx, in.After, limit)
		return err
	})
	if err != nil {
		return nil, domain.AfterKey{}, perr.FromPostgres(err, "inbox list pending")
	}
	return rows, next, nil
}

// MarkRouted implements domain.MarkerPort
func (s *Service) MarkRouted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).MarkRouted(ctx, ids)
	})
	return perr.FromPostgres(err, "inbox mark routed")
}
