// Package ch provides a clickhouse client seam
package ch

import (
	"context"
	"errors"
)

// Config configures the clickhouse client
type Config struct {
	URL string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH is a placeholder seam for clickhouse connectivity
// decision audit streams land here once the columnar sink is provisioned
type CH struct{}

// Open returns a clickhouse client stub
func Open(_ context.Context, _ Config) (*CH, error) {
	return &CH{}, nil
}

// Insert inserts rows into a table using the driver specific format
func (c *CH) Insert(_ context.Context, _ string, _ any) error {
	return errors.New("ch insert not implemented")
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(_ context.Context, _ string, _ ...any) (Rows, error) {
	return &emptyRows{}, nil
}

// Close closes resources
func (c *CH) Close() error { return nil }

// emptyRows is a stub that returns no results
type emptyRows struct{}

func (*emptyRows) Next() bool           { return false }
func (*emptyRows) Scan(_ ...any) error  { return nil }
func (*emptyRows) Err() error           { return nil }
func (*emptyRows) Close() error         { return nil }
func (*emptyRows) Columns() []string    { return nil }
