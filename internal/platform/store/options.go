package store

import (
	"hyperflow/internal/platform/logger"
)

// Option mutates the Store during Open
type Option func(*Store) error

// WithLogger sets the logger shared by the PG and CH subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
