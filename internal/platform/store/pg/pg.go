// Package pg opens the pgx pool behind the store's sql seam
package pg

import (
	"context"
	"maps"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the subset of pool settings the services tune
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	SlowMs   int
}

// PG is an open pool plus the tracing settings the store adapter reads
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool without waiting for the server, the store pings it
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		params := maps.Clone(pc.ConnConfig.RuntimeParams)
		if params == nil {
			params = map[string]string{}
		}
		params["application_name"] = cfg.AppName
		pc.ConnConfig.RuntimeParams = params
	}

	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close releases the pool, nil safe
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
