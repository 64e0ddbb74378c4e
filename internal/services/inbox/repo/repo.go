// Package repo provides repository implementations for the inbox
package repo

import (
	"context"
	"fmt"
	"strings"

	"hyperflow/internal/modkit/repokit"
	"hyperflow/internal/services/inbox/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the inbox repository
type Storage interface {
	Insert(ctx context.Context, d domain.Document) (domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	ListPending(ctx context.Context, after domain.AfterKey, limit int) ([]domain.Document, domain.AfterKey, error)
	MarkRouted(ctx context.Context, ids []string) error
}

const docCols = `id::text, source, source_detail, text, received_at, routed, routed_at`

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, d domain.Document) (domain.Document, error) {
	row := s.q.QueryRow(ctx, `
		INSERT INTO inbox_documents (id, source, source_detail, text)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING `+docCols,
		d.ID, d.Source, d.SourceDetail, d.Text)
	return scanDoc(row)
}

// Get implements Storage
func (s *pg) Get(ctx context.Context, id string) (domain.Document, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+docCols+` FROM inbox_documents WHERE id = $1::uuid`, id)
	return scanDoc(row)
}

// ListPending returns unrouted documents after the (receivedAt, id) cursor,
// up to limit. Ordered by (received_at, id)
func (s *pg) ListPending(
	ctx context.Context,
	after domain.AfterKey,
	limit int,
) ([]domain.Document, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`SELECT ` + docCols + ` FROM inbox_documents WHERE NOT routed`)
	// keyset only when the cursor is set (avoid ""::uuid on first page)
	if after.ID != "" {
		sb.WriteString(` AND (received_at, id) > (` + arg(after.ReceivedAt) + `, ` + arg(after.ID) + `::uuid)`)
	}
	sb.WriteString(` ORDER BY received_at, id LIMIT ` + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Document, 0, limit)
	var last domain.AfterKey
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(
			&d.ID, &d.Source, &d.SourceDetail, &d.Text, &d.ReceivedAt, &d.Routed, &d.RoutedAt,
		); err != nil {
			return nil, domain.AfterKey{}, err
		}
		out = append(out, d)
		last = domain.AfterKey{ReceivedAt: d.ReceivedAt, ID: d.ID}
	}
	return out, last, rows.Err()
}

// MarkRouted implements Storage; already-routed ids are left untouched
func (s *pg) MarkRouted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.q.Exec(ctx, `
		UPDATE inbox_documents
		SET routed = true, routed_at = now()
		WHERE NOT routed AND id = ANY($1::uuid[])`, ids)
	return err
}

func scanDoc(row repokit.Row) (domain.Document, error) {
	var d domain.Document
	err := row.Scan(&d.ID, &d.Source, &d.SourceDetail, &d.Text, &d.ReceivedAt, &d.Routed, &d.RoutedAt)
	return d, err
}
