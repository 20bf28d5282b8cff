// Package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"
	"time"

	"codecheck/internal/platform/config"
	"codecheck/internal/platform/logger"
	phttp "codecheck/internal/platform/net/http"
	"codecheck/internal/platform/net/middleware"
	"codecheck/internal/platform/store"

	"codecheck/internal/modkit"
	"codecheck/internal/modkit/httpkit"
	"codecheck/internal/modkit/module"
	"codecheck/internal/modkit/swaggerkit"

	metamod "codecheck/internal/services/api/meta/module"
	webhookdomain "codecheck/internal/services/api/webhook/domain"
	webhookmod "codecheck/internal/services/api/webhook/module"
	auditdomain "codecheck/internal/services/audit/domain"
	auditmod "codecheck/internal/services/audit/module"
	dailydomain "codecheck/internal/services/daily/domain"
	dailymod "codecheck/internal/services/daily/module"
)

// Options are the API options
type Options struct {
	// Config is the root view, modules add their own prefixes
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Sender delivers replies, BotName and Escape shape commands and replies for it
	Sender  webhookdomain.Sender
	BotName string
	Escape  func(string) string

	EnableSwagger  bool
	EnableProfiler bool

	// Now is the clock for daily keys, nil means time.Now
	Now func() time.Time
}

// Mount builds every module, prepares their storage and mounts the API onto r
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	deps := modkit.FromStore(opt.Config, opt.Store)
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Now != nil {
		deps.Now = opt.Now
	}

	daily := dailymod.New(deps, dailymod.FromConfig(opt.Config))
	audit := auditmod.New(deps)

	whOpts := webhookmod.FromConfig(opt.Config)
	whOpts.BotName = opt.BotName
	whOpts.Escape = opt.Escape
	webhook := webhookmod.New(whOpts, modkit.WithPorts(webhookmod.Needs{
		State:  module.MustPortsOf[dailydomain.StatePort](daily),
		Sender: opt.Sender,
		Audit:  module.MustPortsOf[auditdomain.RecorderPort](audit),
	}))

	mods := []module.Module{
		daily,
		audit,
		metamod.New(deps),
		webhook,
	}
	if err := module.Migrate(ctx, mods...); err != nil {
		return err
	}

	// liveness for load balancers, outside the versioned stack
	r.Handle("/ping", middleware.Heartbeat("/ping")(http.NotFoundHandler()))

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("CODECHECK_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	logger.C(ctx).Info().
		Strs("modules", module.Names()).
		Str("daily_backend", string(daily.Backend())).
		Bool("audit", audit.Enabled()).
		Str("webhook", "/api/v1"+whOpts.Path).
		Msg("api mounted")
	return nil
}
