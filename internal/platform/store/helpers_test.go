package store

import (
	"context"
	"errors"
	"testing"

	perr "hyperflow/internal/platform/errors"
)

// fakeTag is a CommandTag with a fixed row count
type fakeTag struct{ n int64 }

func (f fakeTag) String() string      { return "FAKE" }
func (f fakeTag) RowsAffected() int64 { return f.n }

// fakeRows serves pre-baked rows of scalars to Scan
type fakeRows struct {
	data [][]any
	idx  int
	err  error
}

func (f *fakeRows) Next() bool { return f.idx < len(f.data) }
func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.idx]
	f.idx++
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = row[i].(int)
		case *string:
			*d = row[i].(string)
		default:
			return errors.New("fakeRows: unsupported dest type")
		}
	}
	return nil
}
func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return nil }

// fakeRow adapts one row of data to the Row contract
type fakeRow struct {
	data []any
	err  error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = f.data[i].(int)
		case *string:
			*d = f.data[i].(string)
		default:
			return errors.New("fakeRow: unsupported dest type")
		}
	}
	return nil
}

// fakeQuerier returns canned results for each surface
type fakeQuerier struct {
	tag     CommandTag
	execErr error

	rows     *fakeRows
	queryErr error

	row fakeRow
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return f.tag, f.execErr
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return f.row
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()

	// exactly one row
	q := &fakeQuerier{tag: fakeTag{n: 1}}
	if err := ExecOne(ctx, q, "update x"); err != nil {
		t.Fatalf("ExecOne(1 row) unexpected error: %v", err)
	}

	// zero rows
	q = &fakeQuerier{tag: fakeTag{n: 0}}
	if err := ExecOne(ctx, q, "update x"); err == nil {
		t.Fatalf("ExecOne(0 rows) should fail")
	}

	// underlying exec error wins
	boom := errors.New("boom")
	q = &fakeQuerier{tag: fakeTag{n: 1}, execErr: boom}
	if err := ExecOne(ctx, q, "update x"); !errors.Is(err, boom) {
		t.Fatalf("ExecOne should surface exec error, got %v", err)
	}
}

func TestScalar(t *testing.T) {
	ctx := context.Background()

	q := &fakeQuerier{row: fakeRow{data: []any{42}}}
	got, err := Scalar[int](ctx, q, "select count(*)")
	if err != nil || got != 42 {
		t.Fatalf("Scalar = %d err=%v, want 42 nil", got, err)
	}

	q = &fakeQuerier{row: fakeRow{err: errors.New("scan boom")}}
	if _, err := Scalar[int](ctx, q, "select 1"); err == nil {
		t.Fatalf("Scalar should surface scan error")
	}
}

func scanPair(r Row) (string, error) {
	var s string
	err := r.Scan(&s)
	return s, err
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	// single row
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{"alpha"}}}}
	got, err := One(ctx, q, scanPair, "select slug")
	if err != nil || got != "alpha" {
		t.Fatalf("One = %q err=%v, want alpha nil", got, err)
	}

	// no rows -> ErrNotFound
	q = &fakeQuerier{rows: &fakeRows{}}
	if _, err := One(ctx, q, scanPair, "select slug"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("One(no rows) = %v, want ErrNotFound", err)
	}

	// more than one row is a programmer error
	q = &fakeQuerier{rows: &fakeRows{data: [][]any{{"a"}, {"b"}}}}
	if _, err := One(ctx, q, scanPair, "select slug"); err == nil {
		t.Fatalf("One(2 rows) should fail")
	}

	// query error passthrough
	q = &fakeQuerier{queryErr: errors.New("q boom")}
	if _, err := One(ctx, q, scanPair, "select slug"); err == nil {
		t.Fatalf("One should surface query error")
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()

	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{"a"}, {"b"}, {"c"}}}}
	got, err := Many(ctx, q, scanPair, "select slug")
	if err != nil {
		t.Fatalf("Many unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("Many mismatch: %#v", got)
	}

	// empty result is nil slice, no error
	q = &fakeQuerier{rows: &fakeRows{}}
	got, err = Many(ctx, q, scanPair, "select slug")
	if err != nil || got != nil {
		t.Fatalf("Many(empty) = %#v err=%v, want nil nil", got, err)
	}

	// rows.Err surfaces after iteration
	q = &fakeQuerier{rows: &fakeRows{data: [][]any{{"a"}}, err: errors.New("iter boom")}}
	if _, err := Many(ctx, q, scanPair, "select slug"); err == nil {
		t.Fatalf("Many should surface rows.Err")
	}
}
