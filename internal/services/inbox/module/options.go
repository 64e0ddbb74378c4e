package module

import "hyperflow/internal/platform/config"

// Options configures the inbox module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	f := cfg.Prefix("CORE_INBOX_")
	return Options{
		HardLimit: f.MayInt("HARD_LIMIT", 1000),
	}
}
