// Package modkit provides module wiring and core deps
package modkit

import (
	"hyperflow/internal/modkit/repokit"
	"hyperflow/internal/platform/config"
	"hyperflow/internal/platform/logger"
	"hyperflow/internal/platform/store"
)

// Deps holds the shared dependencies handed to every module at build time
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner

	// CH is the optional decision audit sink; nil when disabled
	CH store.Clickhouse
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
