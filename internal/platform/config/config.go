// Package config reads service settings from env vars under composable prefixes
package config

import (
	"strconv"
	"strings"
	"time"

	"codecheck/internal/platform/config/raw"
	"codecheck/internal/platform/logger"
)

// Conf is an env view, Prefix("CODECHECK_DAILY_") scopes it to one component
// invalid optional values log a warning and fall back, missing required ones panic
type Conf struct{ env raw.Conf }

// New returns the unprefixed view
func New() Conf { return Conf{env: raw.New()} }

// Prefix appends p to the key prefix
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// Key is the env var name behind k
func (c Conf) Key(k string) string { return c.env.Key(k) }

// Has reports whether k is set to something other than whitespace
func (c Conf) Has(k string) bool { return c.env.Lookup(k) != "" }

// MustString returns k and panics when it is empty
func (c Conf) MustString(k string) string {
	v := c.env.Lookup(k)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
	}
	return v
}

// MayString returns k or def when it is empty
func (c Conf) MayString(k, def string) string { return c.env.Get(k, def) }

// may parses k, an unset value is def and a rejected one is def plus a warning
func may[T any](c Conf, k string, def T, parse func(string) (T, error), valid func(T) bool) T {
	s := c.env.Lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err == nil && (valid == nil || valid(v)) {
		return v
	}
	logger.Get().Warn().Str("key", c.Key(k)).Str("value", s).Interface("default", def).Msg("invalid env value, using default")
	return def
}

// MayInt parses k as an int
func (c Conf) MayInt(k string, def int) int { return may(c, k, def, strconv.Atoi, nil) }

// MayBool parses k with strconv.ParseBool
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, def, strconv.ParseBool, nil) }

// MayDuration parses k as a positive duration such as 24h
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, def, time.ParseDuration, func(d time.Duration) bool { return d > 0 })
}

// MayEnum lowercases k and panics unless it is one of allowed, unset is def
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(k, def))
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.Key(k)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
