package module

import "hyperflow/internal/platform/config"

// Options configures the decisions module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	f := cfg.Prefix("CORE_DECISIONS_")
	return Options{
		HardLimit: f.MayInt("HARD_LIMIT", 200),
	}
}
