package store

import (
	"context"
	"fmt"
	"time"

	"codecheck/internal/platform/logger"
	chx "codecheck/internal/platform/store/ch"
	"codecheck/internal/platform/store/pg"
	"codecheck/internal/platform/store/rds"
)

const (
	pgRetries     = 20
	pgPingTimeout = 3 * time.Second
	backoffStart  = 150 * time.Millisecond
	backoffMax    = 2 * time.Second
)

var sleep = time.Sleep

// pingUntil retries ping with doubling backoff until it answers, ctx ends or attempts run out
func pingUntil(ctx context.Context, attempts int, timeout time.Duration, ping func(context.Context) error) error {
	var err error
	backoff := backoffStart
	for i := range attempts {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err = ping(pctx)
		cancel()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if i < attempts-1 {
			sleep(backoff)
			backoff = min(backoff*2, backoffMax)
		}
	}
	return fmt.Errorf("no answer after %d attempts: %w", attempts, err)
}

// openPG waits for postgres to come up, it often starts alongside the api
func openPG(ctx context.Context, cfg Config, log logger.Logger) (RowQuerier, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = pgRetries
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = pgPingTimeout
	}
	// ping the pool directly so startup leaves no trace lines
	if err := pingUntil(ctx, attempts, timeout, p.Pool.Ping); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}

func openRDS(ctx context.Context, cfg Config) (KV, error) {
	r, err := rds.Open(ctx, rds.Config{Addr: cfg.RDS.Addr, DB: cfg.RDS.DB, Password: cfg.RDS.Password})
	if err != nil {
		return nil, err
	}
	return r, nil
}
