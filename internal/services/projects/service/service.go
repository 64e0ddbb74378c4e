// Package service implements the project registry and snapshot workflows
package service

import (
	"context"
	stderrs "errors"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"

	"hyperflow/internal/core/normalize"
	"hyperflow/internal/core/profile"
	"hyperflow/internal/core/route"
	"hyperflow/internal/modkit/repokit"
	perr "hyperflow/internal/platform/errors"
	"hyperflow/internal/platform/logger"
	"hyperflow/internal/services/projects/domain"
	"hyperflow/internal/services/projects/repo"
)

// Service implements domain.RegistryPort and domain.SnapshotPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Norm   *normalize.Normalizer

	// snap is the current compiled candidate set; readers never block writers
	snap atomic.Pointer[profile.Snapshot]
}

// New constructs the projects service with an empty snapshot.
// Callers run Reload once storage is reachable
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	if db == nil {
		panic("projects.Service requires a non nil TxRunner")
	}
	if b == nil {
		panic("projects.Service requires a non nil Storage binder")
	}
	s := &Service{DB: db, Binder: b, Norm: normalize.New()}
	empty, _ := profile.Compile(nil, s.Norm)
	s.snap.Store(empty)
	return s
}

// Snapshot implements domain.SnapshotPort
func (s *Service) Snapshot() *profile.Snapshot { return s.snap.Load() }

// Reload implements domain.SnapshotPort.
// Rebuilds the compiled snapshot from active projects and swaps it atomically.
// Profiles that fail compile are logged and skipped, never fatal
func (s *Service) Reload(ctx context.Context) (domain.ReloadReport, error) {
	started := time.Now()

	var projects []domain.Project
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		projects, err = s.Binder.Bind(q).List(ctx, false)
		return err
	})
	if err != nil {
		return domain.ReloadReport{}, perr.FromPostgres(err, "projects reload")
	}

	profiles := make([]profile.Profile, 0, len(projects))
	for _, p := range projects {
		profiles = append(profiles, profile.Profile{
			Slug:        p.Slug,
			DisplayName: p.DisplayName,
			Aliases:     p.Aliases,
			TeamMembers: p.TeamMembers,
			Keywords:    p.Keywords,
		})
	}

	snap, skips := profile.Compile(profiles, s.Norm)
	s.snap.Store(snap)

	report := domain.ReloadReport{Loaded: snap.Len(), Duration: time.Since(started)}
	for _, sk := range skips {
		report.Skipped = append(report.Skipped, domain.SkipDetail{Slug: sk.Slug, Reason: sk.Reason})
		logger.C(ctx).Warn().
			Str("slug", sk.Slug).
			Str("reason", sk.Reason).
			Msg("project profile skipped")
	}
	logger.C(ctx).Info().
		Int("loaded", report.Loaded).
		Int("skipped", len(report.Skipped)).
		Dur("took", report.Duration).
		Msg("project snapshot reloaded")
	return report, nil
}

// List implements domain.RegistryPort
func (s *Service) List(ctx context.Context, includeInactive bool) ([]domain.Project, error) {
	var out []domain.Project
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).List(ctx, includeInactive)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "projects list")
	}
	return out, nil
}

// Get implements domain.RegistryPort
func (s *Service) Get(ctx context.Context, slug string) (domain.Project, error) {
	var out domain.Project
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, slug)
		return err
	})
	if stderrs.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, perr.NotFoundf("project %q not found", slug)
	}
	if err != nil {
		return domain.Project{}, perr.FromPostgres(err, "projects get")
	}
	return out, nil
}

// Create implements domain.RegistryPort and reloads the snapshot on success
func (s *Service) Create(ctx context.Context, in UpsertInput) (domain.Project, error) {
	// the general bucket is a routing sentinel, not a registry row
	if in.Slug == route.SlugGeneral {
		return domain.Project{}, perr.WithField(
			perr.InvalidArgf("slug %q is reserved", route.SlugGeneral), "slug")
	}
	p := projectFromInput(in)
	var out domain.Project
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Insert(ctx, p)
		return err
	})
	if perr.IsDuplicateKey(err) {
		return domain.Project{}, perr.DuplicateKeyf("project %q already exists", in.Slug)
	}
	if err != nil {
		return domain.Project{}, perr.FromPostgres(err, "projects create")
	}
	s.reloadAfterWrite(ctx)
	return out, nil
}

// Update implements domain.RegistryPort and reloads the snapshot on success
func (s *Service) Update(ctx context.Context, slug string, in UpsertInput) (domain.Project, error) {
	p := projectFromInput(in)
	p.Slug = slug
	var out domain.Project
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Update(ctx, p)
		return err
	})
	if stderrs.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, perr.NotFoundf("project %q not found", slug)
	}
	if err != nil {
		return domain.Project{}, perr.FromPostgres(err, "projects update")
	}
	s.reloadAfterWrite(ctx)
	return out, nil
}

// Deactivate implements domain.RegistryPort and reloads the snapshot on success
func (s *Service) Deactivate(ctx context.Context, slug string) error {
	var changed bool
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		changed, err = s.Binder.Bind(q).Deactivate(ctx, slug)
		return err
	})
	if err != nil {
		return perr.FromPostgres(err, "projects deactivate")
	}
	if !changed {
		return perr.NotFoundf("project %q not found or already inactive", slug)
	}
	s.reloadAfterWrite(ctx)
	return nil
}

// reloadAfterWrite refreshes the snapshot after a registry mutation.
// Reload errors leave the previous snapshot in place
func (s *Service) reloadAfterWrite(ctx context.Context) {
	if _, err := s.Reload(ctx); err != nil {
		logger.C(ctx).Error().Err(err).Msg("snapshot reload after write failed")
	}
}

// UpsertInput aliases the domain input for handler ergonomics
type UpsertInput = domain.UpsertInput

func projectFromInput(in UpsertInput) domain.Project {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return domain.Project{
		Slug:        in.Slug,
		DisplayName: in.DisplayName,
		Aliases:     in.Aliases,
		TeamMembers: in.TeamMembers,
		Keywords:    in.Keywords,
		Active:      active,
	}
}
