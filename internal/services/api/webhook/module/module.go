// Package module wires the Telegram webhook into the API using modkit
package module

import (
	"net/http"

	"codecheck/internal/modkit"
	"codecheck/internal/modkit/httpkit"
	"codecheck/internal/modkit/swaggerkit"
	"codecheck/internal/services/api/webhook/domain"
	webhookhttp "codecheck/internal/services/api/webhook/http"
	"codecheck/internal/services/api/webhook/service"
	auditdomain "codecheck/internal/services/audit/domain"
	dailydomain "codecheck/internal/services/daily/domain"
)

// Needs are the ports this module consumes, injected with modkit.WithPorts
type Needs struct {
	State  dailydomain.StatePort
	Sender domain.Sender
	Audit  auditdomain.RecorderPort
}

// Ports exposed by the webhook module
type Ports struct {
	Handler domain.Handler
}

// Module implements the webhook module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	opts   Options
	ports  Ports
}

// New constructs the module, it panics when Needs are not injected
func New(opts Options, mods ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("telegram")}, mods...)...)
	needs, ok := modkit.PortsAs[Needs](b)
	if !ok {
		panic("webhook module: Needs must be injected with modkit.WithPorts")
	}
	if opts.Path == "" {
		opts.Path = DefaultPath
	}

	svc := service.New(needs.State, needs.Sender, needs.Audit, service.Config{
		MaxInput: opts.MaxInput,
		BotName:  opts.BotName,
		Escape:   opts.Escape,
	})

	swaggerkit.Register(webhookhttp.Docs(b.Prefix + opts.Path))

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		opts:   opts,
		ports:  Ports{Handler: svc},
	}
}

// MountRoutes mounts the webhook under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		webhookhttp.Register(rr, webhookhttp.Options{Path: m.opts.Path, Secret: m.opts.Secret}, m.ports.Handler)
	})
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
