// Package repo provides postgres access for the project registry
package repo

import (
	"context"

	"hyperflow/internal/modkit/repokit"
	"hyperflow/internal/services/projects/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the projects repository
type Storage interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Project, error)
	Get(ctx context.Context, slug string) (domain.Project, error)
	Insert(ctx context.Context, p domain.Project) (domain.Project, error)
	Update(ctx context.Context, p domain.Project) (domain.Project, error)
	Deactivate(ctx context.Context, slug string) (bool, error)
}

const projectCols = `slug, display_name, aliases, team_members, keywords, active, created_at, updated_at`

func scanProject(rows repokit.Rows) (domain.Project, error) {
	var p domain.Project
	err := rows.Scan(
		&p.Slug, &p.DisplayName, &p.Aliases, &p.TeamMembers, &p.Keywords,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanProjectRow(row repokit.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.Slug, &p.DisplayName, &p.Aliases, &p.TeamMembers, &p.Keywords,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// List implements Storage ordered by slug for stable snapshots
func (s *pg) List(ctx context.Context, includeInactive bool) ([]domain.Project, error) {
	q := `SELECT ` + projectCols + ` FROM projects`
	if !includeInactive {
		q += ` WHERE active`
	}
	q += ` ORDER BY slug`

	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get implements Storage
func (s *pg) Get(ctx context.Context, slug string) (domain.Project, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+projectCols+` FROM projects WHERE slug = $1`, slug)
	return scanProjectRow(row)
}

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, p domain.Project) (domain.Project, error) {
	row := s.q.QueryRow(ctx, `
		INSERT INTO projects (slug, display_name, aliases, team_members, keywords, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectCols,
		p.Slug, p.DisplayName, p.Aliases, p.TeamMembers, p.Keywords, p.Active)
	return scanProjectRow(row)
}

// Update implements Storage
func (s *pg) Update(ctx context.Context, p domain.Project) (domain.Project, error) {
	row := s.q.QueryRow(ctx, `
		UPDATE projects
		SET display_name = $2, aliases = $3, team_members = $4, keywords = $5,
			active = $6, updated_at = now()
		WHERE slug = $1
		RETURNING `+projectCols,
		p.Slug, p.DisplayName, p.Aliases, p.TeamMembers, p.Keywords, p.Active)
	return scanProjectRow(row)
}

// Deactivate implements Storage; reports whether a row changed
func (s *pg) Deactivate(ctx context.Context, slug string) (bool, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE projects SET active = false, updated_at = now() WHERE slug = $1 AND active`, slug)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
