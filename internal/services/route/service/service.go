// Package service implements the route orchestration service
package service

import (
	"context"
	"sync"
	"time"

	"hyperflow/internal/core/route"
	"hyperflow/internal/platform/logger"
	decdom "hyperflow/internal/services/decisions/domain"
	inboxdom "hyperflow/internal/services/inbox/domain"
	dom "hyperflow/internal/services/route/domain"
)

// Config for the route service
type Config struct {
	Workers  int
	PageSize int
	DryRun   bool
}

// Service implements domain.DeciderPort and domain.RunnerPort
type Service struct {
	Ports dom.Ports
	Cfg   Config
}

// New constructs a new route service
func New(ports dom.Ports, cfg Config) *Service {
	if ports.Snapshots == nil || ports.Inbox == nil || ports.Marker == nil || ports.Decisions == nil {
		panic("route.Service requires Snapshots, Inbox, Marker and Decisions ports")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	return &Service{Ports: ports, Cfg: cfg}
}

// engine builds a router over the current snapshot.
// Cheap: the snapshot is already compiled, the engine only wraps it
func (s *Service) engine() *route.Engine {
	return route.NewEngine(s.Ports.Snapshots.Snapshot())
}

// Decide implements domain.DeciderPort
func (s *Service) Decide(ctx context.Context, in dom.DecideInput) (dom.Outcome, error) {
	doc, err := s.Ports.Inbox.Get(ctx, in.DocumentID)
	if err != nil {
		return dom.Outcome{}, err
	}

	d := s.engine().Decide(route.Document{ID: doc.ID, Text: doc.Text})
	now := time.Now().UTC()

	if s.Cfg.DryRun {
		return dom.Outcome{Decision: d, DecidedAt: now, Persisted: false}, nil
	}
	if err := s.Ports.Decisions.WriteBatch(ctx, []decdom.DecisionWrite{decisionWrite(d, now)}); err != nil {
		return dom.Outcome{}, err
	}
	if err := s.Ports.Marker.MarkRouted(ctx, []string{doc.ID}); err != nil {
		return dom.Outcome{}, err
	}
	return dom.Outcome{Decision: d, DecidedAt: now, Persisted: true}, nil
}

// Preview implements domain.DeciderPort; nothing is written
func (s *Service) Preview(_ context.Context, in dom.PreviewInput) (dom.Outcome, error) {
	d := s.engine().Decide(route.Document{ID: "preview", Text: in.Text})
	return dom.Outcome{Decision: d, DecidedAt: time.Now().UTC(), Persisted: false}, nil
}

// RunPending implements domain.RunnerPort.
// Pages over unrouted documents in arrival order and routes each page with a
// bounded worker pool. One engine serves the whole sweep so every document in
// a run is decided against the same snapshot
func (s *Service) RunPending(ctx context.Context) (dom.RunReport, error) {
	started := time.Now()
	eng := s.engine()
	report := dom.RunReport{}

	after := inboxdom.AfterKey{}
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rows, next, err := s.Ports.Inbox.ListPending(ctx, inboxdom.ListInput{
			After: after, Limit: s.Cfg.PageSize,
		})
		if err != nil {
			return report, err
		}
		if len(rows) == 0 {
			break
		}
		report.Pages++
		report.Scanned += len(rows)

		now := time.Now().UTC()
		out := make([]decdom.DecisionWrite, len(rows))

		sem := make(chan struct{}, s.Cfg.Workers)
		wg := sync.WaitGroup{}
		for i := range rows {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer func() { <-sem; wg.Done() }()
				doc := rows[i]
				d := eng.Decide(route.Document{ID: doc.ID, Text: doc.Text})
				out[i] = decisionWrite(d, now)
			}(i)
		}
		wg.Wait()

		if !s.Cfg.DryRun {
			if err := s.Ports.Decisions.WriteBatch(ctx, out); err != nil {
				return report, err
			}
			ids := make([]string, 0, len(rows))
			for _, doc := range rows {
				ids = append(ids, doc.ID)
			}
			if err := s.Ports.Marker.MarkRouted(ctx, ids); err != nil {
				return report, err
			}
			report.Routed += len(rows)
		}

		after = next
	}

	report.Duration = time.Since(started)
	logger.C(ctx).Info().
		Int("scanned", report.Scanned).
		Int("routed", report.Routed).
		Int("pages", report.Pages).
		Bool("dry_run", s.Cfg.DryRun).
		Dur("took", report.Duration).
		Msg("pending sweep finished")
	return report, nil
}

func decisionWrite(d route.Decision, at time.Time) decdom.DecisionWrite {
	return decdom.DecisionWrite{
		DocumentID:    d.DocumentID,
		ChosenSlug:    d.ChosenSlug,
		TotalScore:    d.TotalScore,
		Tier:          d.Tier,
		RunnerUpSlugs: d.RunnerUpSlugs,
		Explanation:   d.Explanation,
		EngineVersion: d.EngineVersion,
		DecidedAt:     at,
	}
}
