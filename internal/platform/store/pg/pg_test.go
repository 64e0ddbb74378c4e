package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	kit "hyperflow/internal/platform/testkit"
)

func TestOpenRejectsBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"}, nil, nil)
	if err == nil {
		t.Fatalf("Open should fail on an unparseable DSN")
	}
}

func TestOpenAppliesConfigAndMutator(t *testing.T) {
	kit.Serial(t)

	var captured *pgxpool.Config
	kit.Swap(t, &newPool, func(ctx context.Context, pcfg *pgxpool.Config) (*pgxpool.Pool, error) {
		captured = pcfg
		return nil, errors.New("stop before connecting")
	})

	mutRan := false
	_, err := Open(context.Background(),
		Config{URL: "postgres://u:p@localhost:5432/db", MaxConns: 7, SlowMs: 250},
		nil,
		func(pcfg *pgxpool.Config) { mutRan = true },
	)
	if err == nil {
		t.Fatalf("expected the swapped pool constructor error")
	}
	if captured == nil {
		t.Fatalf("pool constructor never saw a config")
	}
	if captured.MaxConns != 7 {
		t.Fatalf("MaxConns = %d, want 7", captured.MaxConns)
	}
	if !mutRan {
		t.Fatalf("pool config mutator did not run")
	}
}

func TestOpenPoolErrorPropagates(t *testing.T) {
	kit.Serial(t)

	boom := errors.New("pool boom")
	kit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, boom
	})

	_, err := Open(context.Background(), Config{URL: "postgres://u:p@localhost/db"}, nil, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Open error = %v, want the pool error", err)
	}
}

func TestCloseNilSafe(t *testing.T) {
	var p *PG
	p.Close() // must not panic

	(&PG{}).Close() // nil pool must not panic either
}
