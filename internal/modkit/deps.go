// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"codecheck/internal/modkit/repokit"
	"codecheck/internal/platform/config"
	"codecheck/internal/platform/logger"
	"codecheck/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// any of these may be nil when the backing store is disabled
	PG  repokit.Queryer
	CH  store.Clickhouse
	RDS store.KV

	// Now is the wall clock, tests swap it
	Now func() time.Time
}

// FromStore copies the open handles of s into a Deps value
func FromStore(cfg config.Conf, s *store.Store) Deps {
	d := Deps{Cfg: cfg, Now: time.Now}
	if s == nil {
		return d
	}
	d.Log = s.Log
	d.PG = s.PG
	d.CH = s.CH
	d.RDS = s.RDS
	return d
}

// Clock returns Now or time.Now when unset
func (d Deps) Clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}
