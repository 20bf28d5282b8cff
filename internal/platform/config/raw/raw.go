// Package raw reads env vars without logging, the logger bootstraps from it
package raw

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

// Conf is an env view under a key prefix such as "LOG_"
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix appends p to the key prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the env var name behind k
func (c Conf) Key(k string) string { return c.prefix + k }

// Lookup returns the trimmed value of k, empty when unset
func (c Conf) Lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// Get returns k or def when it is empty
func (c Conf) Get(k, def string) string {
	if v := c.Lookup(k); v != "" {
		return v
	}
	return def
}

var truthy = []string{"1", "true", "yes", "on"}

// GetBool is def when k is unset, otherwise true only for 1, true, yes or on
func (c Conf) GetBool(k string, def bool) bool {
	v := c.Lookup(k)
	if v == "" {
		return def
	}
	return slices.Contains(truthy, strings.ToLower(v))
}

// GetInt is def unless k holds a non-negative integer
func (c Conf) GetInt(k string, def int) int {
	if n, err := strconv.Atoi(c.Lookup(k)); err == nil && n >= 0 {
		return n
	}
	return def
}
