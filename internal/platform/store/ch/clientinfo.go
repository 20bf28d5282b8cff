package ch

import (
	"runtime"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"codecheck/internal/core/version"
)

// BuildClientInfo names this process in system.query_log, tag overrides the build version
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	bi := version.Get()
	v := strings.TrimSpace(tag)
	if v == "" {
		v = bi.Version
	}
	products := []struct{ Name, Version string }{
		{"codecheck", v},
		{"role", strings.TrimSpace(role)},
		{"commit", bi.Commit},
		{"go", runtime.Version()},
	}
	return clickhouse.ClientInfo{Products: products}
}
