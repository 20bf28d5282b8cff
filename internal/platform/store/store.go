// Package store opens the optional storage backends and hands them out as narrow seams
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codecheck/internal/platform/logger"
)

// Store holds one seam per backend, a disabled backend stays nil
// the zero value is usable and holds nothing
type Store struct {
	Log logger.Logger

	PG  RowQuerier
	CH  Clickhouse
	RDS KV
}

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what an Exec did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repos write against
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// Clickhouse is the columnar surface, batch inserts plus plain statements
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// KV is a string key value store with per key expiry
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Close() error
}

// Pinger is implemented by seams that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Option adjusts the Store before any backend opens
type Option func(*Store) error

// WithLogger sets the logger handed to backend clients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// Open connects every backend cfg enables, a failure closes what was already open
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	steps := []struct {
		on   bool
		open func() error
	}{
		{cfg.PG.Enabled, func() (err error) { s.PG, err = openPG(ctx, cfg, s.Log); return }},
		{cfg.CH.Enabled, func() (err error) { s.CH, err = openCH(ctx, cfg); return }},
		{cfg.RDS.Enabled, func() (err error) { s.RDS, err = openRDS(ctx, cfg); return }},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := st.open(); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

type namedSeam struct {
	name string
	seam any
}

func (s *Store) seams() []namedSeam {
	var out []namedSeam
	if s.PG != nil {
		out = append(out, namedSeam{"pg", s.PG})
	}
	if s.CH != nil {
		out = append(out, namedSeam{"ch", s.CH})
	}
	if s.RDS != nil {
		out = append(out, namedSeam{"redis", s.RDS})
	}
	return out
}

// Guard pings every open backend that can be pinged and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, n := range s.seams() {
		p, ok := n.seam.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every open backend
func (s *Store) Close(_ context.Context) error {
	var errs []error
	for _, n := range s.seams() {
		if c, ok := n.seam.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
