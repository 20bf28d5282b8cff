package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"codecheck/internal/platform/store/pg"
)

// pgxQuerier is what pgAdapter needs from pgx, *pgxpool.Pool has it
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgAdapter is the RowQuerier over a pgx pool
// slowUS below zero never marks a query slow, zero marks all of them
type pgAdapter struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slowUS int64
	close  func()
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{q: p.Pool, tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000, close: p.Close}
}

// trace starts timing sql, the returned func reports it with the final error
func (a *pgAdapter) trace(ctx context.Context, sql string, args []any) func(error) {
	if a.tracer == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		us := time.Since(start).Microseconds()
		a.tracer.OnQuery(ctx, pg.QueryEvent{
			SQL:       sql,
			Args:      args,
			ElapsedUS: us,
			Err:       err,
			Slow:      a.slowUS >= 0 && us >= a.slowUS,
		})
	}
}

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	done := a.trace(ctx, sql, args)
	ct, err := a.q.Exec(ctx, sql, args...)
	done(err)
	return ct, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	done := a.trace(ctx, sql, args)
	rs, err := a.q.Query(ctx, sql, args...)
	done(err)
	if err != nil {
		return nil, err
	}
	return pgxRows{rs}, nil
}

// QueryRow reports once Scan ran, pgx defers the error until then
func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return tracedRow{Row: a.q.QueryRow(ctx, sql, args...), done: a.trace(ctx, sql, args)}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error {
	if a.close != nil {
		a.close()
	}
	return nil
}

type tracedRow struct {
	pgx.Row
	done func(error)
}

func (r tracedRow) Scan(dst ...any) error {
	err := r.Row.Scan(dst...)
	r.done(err)
	return err
}

// pgxRows narrows pgx.Rows to Rows
type pgxRows struct{ pgx.Rows }

func (r pgxRows) Columns() []string {
	fds := r.FieldDescriptions()
	names := make([]string, len(fds))
	for i, fd := range fds {
		names[i] = fd.Name
	}
	return names
}
