// Package service provides the decisions service implementation
package service

import (
	"context"

	"hyperflow/internal/modkit/repokit"
	perr "hyperflow/internal/platform/errors"
	"hyperflow/internal/platform/logger"
	"hyperflow/internal/platform/store"
	"hyperflow/internal/services/decisions/domain"
	"hyperflow/internal/services/decisions/repo"
)

// Config for the decisions service
type Config struct {
	// HardLimit is the maximum allowed limit per List call; defaults to 200 if <=0
	HardLimit int
}

// Service implements domain.WriterPort and domain.QueryPort.
// Writes land in Postgres; a best-effort copy streams to the columnar
// audit sink when one is wired
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Audit  store.Clickhouse // optional
	Cfg    Config
}

// New constructs a new decisions service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], audit store.Clickhouse, cfg Config) *Service {
	if db == nil {
		panic("decisions.Service requires a non nil TxRunner")
	}
	if b == nil {
		panic("decisions.Service requires a non nil Storage binder")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 200
	}
	return &Service{DB: db, Binder: b, Audit: audit, Cfg: cfg}
}

// WriteBatch implements domain.WriterPort
func (s *Service) WriteBatch(ctx context.Context, xs []domain.DecisionWrite) error {
	if len(xs) == 0 {
		return nil
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).WriteBatch(ctx, xs)
	})
	if err != nil {
		return perr.FromPostgres(err, "decisions write batch")
	}
	s.mirrorToAudit(ctx, xs)
	return nil
}

// mirrorToAudit streams decisions to the columnar sink.
// Audit failures are logged, never surfaced; Postgres is the record of truth
func (s *Service) mirrorToAudit(ctx context.Context, xs []domain.DecisionWrite) {
	if s.Audit == nil {
		return
	}
	rows := make([][]any, 0, len(xs))
	for _, d := range xs {
		rows = append(rows, []any{
			d.DocumentID, d.ChosenSlug, d.TotalScore, string(d.Tier),
			d.EngineVersion, d.DecidedAt,
		})
	}
	if err := s.Audit.Insert(ctx, "routing_decisions_audit", rows); err != nil {
		logger.C(ctx).Warn().Err(err).Int("rows", len(rows)).Msg("decision audit mirror failed")
	}
}

// List implements domain.QueryPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Row, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []domain.Row
	var next domain.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).List(ctx, in.Window, in.Filters, in.After, limit)
		return err
	})
	if err != nil {
		return nil, domain.AfterKey{}, perr.FromPostgres(err, "decisions list")
	}
	return rows, next, nil
}

// StatsBySlug implements domain.QueryPort
func (s *Service) StatsBySlug(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.SlugStatsRow, error) {
	var out []domain.SlugStatsRow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).StatsBySlug(ctx, w, f)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "decisions stats by slug")
	}
	return out, nil
}

// StatsByTier implements domain.QueryPort
func (s *Service) StatsByTier(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.TierStatsRow, error) {
	var out []domain.TierStatsRow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).StatsByTier(ctx, w, f)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "decisions stats by tier")
	}
	return out, nil
}
