package repo

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"codecheck/internal/modkit/repokit"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"
	"codecheck/internal/services/daily/domain"

	"github.com/jackc/pgx/v5"
)

// Schema creates the daily_state table, safe to run on every start
const Schema = `
CREATE TABLE IF NOT EXISTS daily_state (
	key        text PRIMARY KEY,
	value      text NOT NULL,
	expires_at timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS daily_state_expires_at_idx ON daily_state (expires_at);
`

// PG binds a domain.Repo to a sql handle
var PG repokit.BindFunc[repokit.Queryer, domain.Repo] = NewPG

// SweepEvery spaces the expired row cleanup that rides along with Put
const SweepEvery = time.Hour

type pgRepo struct {
	q     repokit.Queryer
	now   func() time.Time
	every time.Duration // 0 never sweeps
	next  atomic.Int64  // unix nanos the next sweep is due
}

// NewPG stores day sets in daily_state, expired rows read as absent and are
// deleted by the first Put after SweepEvery
func NewPG(q repokit.Queryer) domain.Repo { return &pgRepo{q: q, now: time.Now, every: SweepEvery} }

// EnsureSchema applies Schema
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return perr.FromPostgres(err, "daily ensure schema")
}

func (r *pgRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.q.QueryRow(ctx,
		`SELECT value FROM daily_state WHERE key = $1 AND expires_at > now()`,
		key,
	).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, perr.FromPostgres(err, "daily get")
	}
	return v, true, nil
}

// Put upserts the value, the expiry is absolute from now
func (r *pgRepo) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO daily_state (key, value, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, r.now().Add(ttl).UTC(),
	)
	if err != nil {
		return perr.FromPostgres(err, "daily put")
	}
	r.sweepDue(ctx)
	return nil
}

// sweepDue runs Sweep once per every, concurrent callers race for the slot and one wins
func (r *pgRepo) sweepDue(ctx context.Context) {
	if r.every <= 0 {
		return
	}
	now := r.now()
	due := r.next.Load()
	if now.UnixNano() < due || !r.next.CompareAndSwap(due, now.Add(r.every).UnixNano()) {
		return
	}
	n, err := Sweep(ctx, r.q)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("daily sweep failed")
		return
	}
	logger.C(ctx).Debug().Int64("rows", n).Msg("daily sweep")
}

func (r *pgRepo) Delete(ctx context.Context, key string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM daily_state WHERE key = $1`, key)
	return perr.FromPostgres(err, "daily delete")
}

// Sweep deletes expired rows and reports how many went
func Sweep(ctx context.Context, q repokit.Queryer) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM daily_state WHERE expires_at <= now()`)
	if err != nil {
		return 0, perr.FromPostgres(err, "daily sweep")
	}
	return tag.RowsAffected(), nil
}
