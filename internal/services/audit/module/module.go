// Package module wires the audit recorder
package module

import (
	"context"
	"time"

	"codecheck/internal/modkit"
	"codecheck/internal/modkit/httpkit"
	"codecheck/internal/services/audit/domain"
	"codecheck/internal/services/audit/repo"
	"codecheck/internal/services/audit/service"
)

// Ports exposed by the audit module
type Ports struct {
	Recorder domain.RecorderPort
}

// Module implements the audit module, it is inert when ClickHouse is not configured
type Module struct {
	sink  *repo.CH
	ports Ports
}

// New builds the recorder over deps.CH
func New(deps modkit.Deps) *Module {
	m := &Module{}
	var sink domain.Sink
	if deps.CH != nil {
		m.sink = repo.NewCH(deps.CH)
		sink = m.sink
	}
	timeout := deps.Cfg.Prefix("CODECHECK_AUDIT_").MayDuration("TIMEOUT", 2*time.Second)
	m.ports = Ports{Recorder: service.New(sink, timeout, deps.Clock())}
	return m
}

// Enabled reports whether submissions are written anywhere
func (m *Module) Enabled() bool { return m.sink != nil }

// Migrate creates the submissions table when enabled
func (m *Module) Migrate(ctx context.Context) error {
	if m.sink == nil {
		return nil
	}
	return m.sink.EnsureSchema(ctx)
}

// Recorder returns the RecorderPort
func (m *Module) Recorder() domain.RecorderPort { return m.ports.Recorder }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "audit" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
