package module

import "hyperflow/internal/platform/config"

// Options holds configuration settings for the route module
type Options struct {
	Workers  int
	PageSize int
	DryRun   bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	f := cfg.Prefix("CORE_ROUTE_")
	return Options{
		Workers:  f.MayInt("WORKERS", 2),
		PageSize: f.MayInt("PAGE_SIZE", 500),
		DryRun:   f.MayBool("DRY_RUN", false),
	}
}
