// Package module mounts the meta endpoints and points the ready probe at the open store seams
package module

import (
	"net/http"
	"time"

	"codecheck/internal/modkit"
	"codecheck/internal/modkit/httpkit"
	"codecheck/internal/modkit/swaggerkit"
	str "codecheck/internal/platform/strings"

	metahttp "codecheck/internal/services/api/meta/http"
)

// ServiceName is what health, version and service report
const ServiceName = "codecheck-api"

// Module is the meta module, it exposes no ports
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New builds the module, name meta under /meta unless opts say otherwise
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	swaggerkit.Register(metahttp.Docs(str.MustPrefix(b.Prefix)))
	return &Module{deps: deps, built: b, startedAt: deps.Clock()()}
}

// MountRoutes mounts the handlers under Prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.built.Mw, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Now:         m.deps.Clock(),
			Backends:    m.backends(),
		})
	})
}

// backends lists all three seams, a nil interface reads as a disabled backend
func (m *Module) backends() []metahttp.Backend {
	return []metahttp.Backend{
		{Name: "pg", Seam: m.deps.PG},
		{Name: "ch", Seam: m.deps.CH},
		{Name: "redis", Seam: m.deps.RDS},
	}
}

// Name is meta unless overridden
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta name") }

// Prefix is the normalized mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the per module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports is nil, nothing depends on meta
func (m *Module) Ports() any { return nil }
