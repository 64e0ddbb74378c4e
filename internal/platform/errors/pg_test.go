package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code, col, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		ColumnName:     col,
		ConstraintName: constraint,
	}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},    // unique violation
		{"23503", ErrorCodeInvalidArgument}, // fk violation -> invalid input
		{"23502", ErrorCodeValidation},      // not null
		{"23514", ErrorCodeValidation},      // check
		{"22001", ErrorCodeInvalidArgument}, // string truncation
		{"22P02", ErrorCodeInvalidArgument}, // invalid text representation
		{"40001", ErrorCodeDB},              // serialization failure (retryable) mapped to DB
		{"40P01", ErrorCodeDB},              // deadlock
		{"55P03", ErrorCodeDB},              // lock not available
		{"57P03", ErrorCodeUnavailable},     // cannot connect now
		{"XXXXX", ErrorCodeDB},              // default branch
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code, "", ""))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	// Non-pg error path
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestExtractPgError(t *testing.T) {
	inner := pg("23505", "slug", "projects_slug_key")
	wrapped := Wrap(fmt.Errorf("insert: %w", inner), ErrorCodeDB, "db")
	got, ok := ExtractPgError(wrapped)
	if !ok || got.Code != "23505" {
		t.Fatalf("ExtractPgError failed through wrapping: %v %v", got, ok)
	}
	if !IsDuplicateKey(wrapped) {
		t.Fatalf("IsDuplicateKey should see through wrapping")
	}
	if IsDuplicateKey(stderrs.New("nope")) {
		t.Fatalf("IsDuplicateKey true for non-pg error")
	}
	if !IsForeignKeyViolation(pg("23503", "", "")) {
		t.Fatalf("IsForeignKeyViolation failed")
	}
}

func TestFromPostgresVariants(t *testing.T) {
	// nil passthrough
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}
	if FromPostgresf(nil, "x %d", 1) != nil {
		t.Fatalf("FromPostgresf(nil) should be nil")
	}

	// mapped: check codes only (PgError string includes SQLSTATE formatting)
	err := FromPostgres(pg("23505", "", ""), "insert project")
	if CodeOf(err) != ErrorCodeDuplicateKey {
		t.Fatalf("FromPostgres map code = %v", CodeOf(err))
	}
	errf := FromPostgresf(pg("22P02", "", ""), "bad: %s", "id")
	if CodeOf(errf) != ErrorCodeInvalidArgument {
		t.Fatalf("FromPostgresf code = %v, want %v", CodeOf(errf), ErrorCodeInvalidArgument)
	}

	// non-pg errors still become DB errors
	generic := FromPostgres(stderrs.New("boom"), "query")
	if CodeOf(generic) != ErrorCodeDB {
		t.Fatalf("FromPostgres(generic) code = %v, want DB", CodeOf(generic))
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(pg("40001", "", "")) { // serialization failure
		t.Fatalf("40001 should be retryable")
	}
	if !IsRetryable(pg("40P01", "", "")) { // deadlock
		t.Fatalf("40P01 should be retryable")
	}
	if !IsRetryable(pg("55P03", "", "")) { // lock not available
		t.Fatalf("55P03 should be retryable")
	}
	// non-retryable
	if IsRetryable(pg("23505", "", "")) {
		t.Fatalf("23505 should not be retryable")
	}
	if IsRetryable(nil) {
		t.Fatalf("nil should not be retryable")
	}
	if IsRetryable(context.Canceled) || IsRetryable(context.DeadlineExceeded) {
		t.Fatalf("local cancellation should not be retryable")
	}
	// text fallback seen on commit
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatalf("commit rollback text should be retryable")
	}
	if IsRetryable(stderrs.New("nope")) {
		t.Fatalf("generic error should not be retryable")
	}
	// Retryable delegates to the same logic
	if !Retryable(pg("40001", "", "")) {
		t.Fatalf("Retryable should delegate to IsRetryable")
	}
}

func TestHTTPHelper(t *testing.T) {
	// OK branch
	if st, w := HTTP(nil); st != 200 || w != (Wire{}) {
		t.Fatalf("HTTP(nil) mismatch: %d %+v", st, w)
	}
	// Non-nil maps via HTTPStatus + WireFrom
	err := NotFoundf("x")
	st, w := HTTP(err)
	if st != 404 || w.Code != ErrorCodeNotFound {
		t.Fatalf("HTTP(err) mismatch: %d %+v", st, w)
	}
}
