// Package repokit provides common types and helpers for repository implementations
package repokit

import "codecheck/internal/platform/store"

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag

	// Clickhouse is the analytics sink surface
	Clickhouse = store.Clickhouse

	// KV is the expiring key value surface
	KV = store.KV
)

// Backend names a storage backend a repo can bind to
type Backend string

// Known backends
const (
	BackendRedis  Backend = "redis"
	BackendPG     Backend = "pg"
	BackendMemory Backend = "memory"
)

// Backends lists the accepted values, for config enums
func Backends() []string {
	return []string{string(BackendRedis), string(BackendPG), string(BackendMemory)}
}
