// Package repo provides the decisions repository implementation
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hyperflow/internal/modkit/repokit"
	"hyperflow/internal/services/decisions/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the decisions repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.DecisionWrite) error
	List(
		ctx context.Context,
		w domain.Window,
		f domain.Filters,
		after domain.AfterKey,
		limit int,
	) ([]domain.Row, domain.AfterKey, error)
	StatsBySlug(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.SlugStatsRow, error)
	StatsByTier(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.TierStatsRow, error)
}

// WriteBatch implements Storage; duplicates for the same engine version are ignored
func (s *pg) WriteBatch(ctx context.Context, xs []domain.DecisionWrite) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO routing_decisions
		(document_id, chosen_slug, total_score, tier, runner_up_slugs,
		explanation, engine_version, decided_at) VALUES `)

	args := make([]any, 0, len(xs)*8)
	for i, d := range xs {
		expl, err := json.Marshal(d.Explanation)
		if err != nil {
			return fmt.Errorf("marshal explanation for %s: %w", d.DocumentID, err)
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*8 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args,
			d.DocumentID, d.ChosenSlug, d.TotalScore, string(d.Tier),
			d.RunnerUpSlugs, expl, d.EngineVersion, d.DecidedAt,
		)
	}
	// Idempotent for one engine version per document
	sb.WriteString(` ON CONFLICT (document_id, engine_version) DO NOTHING`)
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// List implements Storage ordered by (decided_at, document_id)
func (s *pg) List(
	ctx context.Context,
	w domain.Window,
	f domain.Filters,
	after domain.AfterKey,
	limit int,
) ([]domain.Row, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT document_id::text, chosen_slug, total_score, tier,
			runner_up_slugs, explanation, engine_version, decided_at
		FROM routing_decisions
		WHERE decided_at >= ` + arg(w.Since) + ` AND decided_at < ` + arg(w.Until) + `
	`)
	// keyset only when the cursor is set (avoid ""::uuid on first page)
	if after.DocumentID != "" {
		sb.WriteString("  AND (decided_at, document_id) > (" +
			arg(after.DecidedAt) + ", " + arg(after.DocumentID) + "::uuid)\n")
	}
	if f.Slug != "" {
		sb.WriteString("  AND chosen_slug = " + arg(f.Slug) + "\n")
	}
	if f.Tier != "" {
		sb.WriteString("  AND tier = " + arg(f.Tier) + "\n")
	}
	if f.Version != nil {
		sb.WriteString("  AND engine_version = " + arg(*f.Version) + "\n")
	}
	sb.WriteString("ORDER BY decided_at, document_id\nLIMIT " + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Row, 0, limit)
	var last domain.AfterKey
	for rows.Next() {
		var r domain.Row
		var expl []byte
		if err := rows.Scan(
			&r.DocumentID, &r.ChosenSlug, &r.TotalScore, &r.Tier,
			&r.RunnerUpSlugs, &expl, &r.EngineVersion, &r.DecidedAt,
		); err != nil {
			return nil, domain.AfterKey{}, err
		}
		if len(expl) > 0 {
			if err := json.Unmarshal(expl, &r.Explanation); err != nil {
				return nil, domain.AfterKey{}, fmt.Errorf("unmarshal explanation for %s: %w", r.DocumentID, err)
			}
		}
		out = append(out, r)
		last = domain.AfterKey{DecidedAt: r.DecidedAt, DocumentID: r.DocumentID}
	}
	return out, last, rows.Err()
}

// StatsBySlug implements Storage
func (s *pg) StatsBySlug(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.SlugStatsRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT chosen_slug, COUNT(*) AS decisions, AVG(total_score)::float8 AS avg_score
		FROM routing_decisions
		WHERE decided_at >= ` + arg(w.Since) + ` AND decided_at < ` + arg(w.Until) + `
	`)
	if f.Tier != "" {
		sb.WriteString("  AND tier = " + arg(f.Tier) + "\n")
	}
	if f.Version != nil {
		sb.WriteString("  AND engine_version = " + arg(*f.Version) + "\n")
	}
	sb.WriteString("GROUP BY chosen_slug ORDER BY decisions DESC, chosen_slug ASC")

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SlugStatsRow
	for rows.Next() {
		var r domain.SlugStatsRow
		if err := rows.Scan(&r.Slug, &r.Decisions, &r.AvgScore); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// StatsByTier implements Storage
func (s *pg) StatsByTier(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.TierStatsRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT tier, COUNT(*) AS decisions
		FROM routing_decisions
		WHERE decided_at >= ` + arg(w.Since) + ` AND decided_at < ` + arg(w.Until) + `
	`)
	if f.Slug != "" {
		sb.WriteString("  AND chosen_slug = " + arg(f.Slug) + "\n")
	}
	if f.Version != nil {
		sb.WriteString("  AND engine_version = " + arg(*f.Version) + "\n")
	}
	sb.WriteString("GROUP BY tier ORDER BY tier")

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TierStatsRow
	for rows.Next() {
		var r domain.TierStatsRow
		if err := rows.Scan(&r.Tier, &r.Decisions); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
