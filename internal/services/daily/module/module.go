// Package module wires the daily state service
package module

import (
	"context"

	"codecheck/internal/modkit"
	"codecheck/internal/modkit/httpkit"
	"codecheck/internal/modkit/repokit"
	"codecheck/internal/platform/logger"
	"codecheck/internal/services/daily/domain"
	"codecheck/internal/services/daily/repo"
	"codecheck/internal/services/daily/service"
)

// Ports exposed by the daily module
type Ports struct {
	State domain.StatePort
}

// Module implements the daily service module, it mounts no routes
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the repo for opts.Backend and panics when its handle is missing
func New(deps modkit.Deps, opts Options) *Module {
	var r domain.Repo
	switch opts.Backend {
	case repokit.BackendPG:
		r = repokit.MustBind[repokit.Queryer, domain.Repo](repo.PG, deps.PG, "daily pg Queryer")
	case repokit.BackendMemory:
		r = repo.NewMemory(deps.Clock())
	default:
		r = repokit.MustBind[repokit.KV, domain.Repo](repo.Redis, deps.RDS, "daily redis KV")
	}

	svc := service.New(r, service.Config{TTL: opts.TTL}, deps.Clock())
	return &Module{deps: deps, opts: opts, ports: Ports{State: svc}}
}

// Migrate prepares backend storage and clears rows that expired while the
// service was down, only pg needs it
func (m *Module) Migrate(ctx context.Context) error {
	if m.opts.Backend != repokit.BackendPG {
		return nil
	}
	if err := repo.EnsureSchema(ctx, m.deps.PG); err != nil {
		return err
	}
	n, err := repo.Sweep(ctx, m.deps.PG)
	if err != nil {
		return err
	}
	logger.C(ctx).Info().Int64("rows", n).Msg("daily expired rows swept")
	return nil
}

// State returns the StatePort
func (m *Module) State() domain.StatePort { return m.ports.State }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "daily" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}

// Backend reports which repo the state lives in
func (m *Module) Backend() repokit.Backend {
	if m.opts.Backend == "" {
		return repokit.BackendRedis
	}
	return m.opts.Backend
}
