package module

import (
	"time"

	"codecheck/internal/modkit/repokit"
	"codecheck/internal/platform/config"
	"codecheck/internal/services/daily/service"
)

// Options holds configuration settings for the daily module
type Options struct {
	Backend repokit.Backend
	TTL     time.Duration
}

// FromConfig reads CODECHECK_DAILY_BACKEND and CODECHECK_DAILY_TTL
func FromConfig(cfg config.Conf) Options {
	dc := cfg.Prefix("CODECHECK_DAILY_")
	return Options{
		Backend: repokit.Backend(dc.MayEnum("BACKEND", string(repokit.BackendRedis), repokit.Backends()...)),
		TTL:     dc.MayDuration("TTL", service.DefaultTTL),
	}
}
