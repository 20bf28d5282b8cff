// @title         codecheck API
// @version       0.1.0
// @description   Telegram webhook that checks submitted codes

package main

import (
	"context"
	"os/signal"
	"syscall"

	"codecheck/internal/adapters/telegram"
	"codecheck/internal/core/version"
	"codecheck/internal/platform/config"
	"codecheck/internal/platform/logger"
	phttp "codecheck/internal/platform/net/http"
	"codecheck/internal/platform/store"

	"codecheck/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CODECHECK_API_")

	// bring up logging early
	l := logger.Get()
	bi := version.For("codecheck-api")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	sc := api.StoreConfig(root)
	if !sc.Any() {
		l.Warn().Msg("no storage backend configured, daily state lives in memory")
	}
	st, err := store.Open(ctx, sc, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := st.Guard(ctx); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	tg, err := telegram.New(telegram.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("telegram client failed")
	}
	l.Info().Str("bot", tg.Username()).Msg("telegram ready")

	// http server (reads CODECHECK_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	err = api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		Sender:         tg,
		BotName:        tg.Username(),
		Escape:         telegram.Escape,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
