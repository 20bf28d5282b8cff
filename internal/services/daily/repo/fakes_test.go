package repo

import (
	"context"
	"strings"
	"time"

	"codecheck/internal/modkit/repokit"
)

type kvCall struct {
	op, key, value string
	ttl            time.Duration
}

type fakeKV struct {
	calls []kvCall
	value string
	ok    bool
	err   error
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.calls = append(f.calls, kvCall{op: "get", key: key})
	return f.value, f.ok, f.err
}

func (f *fakeKV) Set(_ context.Context, key, value string, ttl time.Duration) error {
	f.calls = append(f.calls, kvCall{op: "set", key: key, value: value, ttl: ttl})
	return f.err
}

func (f *fakeKV) Del(_ context.Context, key string) error {
	f.calls = append(f.calls, kvCall{op: "del", key: key})
	return f.err
}

func (f *fakeKV) Close() error { return nil }

type fakeRow struct {
	v   string
	err error
}

func (r fakeRow) Scan(dst ...any) error {
	if r.err != nil {
		return r.err
	}
	*dst[0].(*string) = r.v
	return nil
}

type fakeTag int64

func (t fakeTag) String() string      { return "DELETE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type sqlCall struct {
	sql  string
	args []any
}

type fakeQ struct {
	execs    []sqlCall
	queries  []sqlCall
	row      fakeRow
	tag      fakeTag
	err      error
	sweepErr error
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	f.execs = append(f.execs, sqlCall{sql, args})
	if f.sweepErr != nil && strings.Contains(sql, "expires_at <=") {
		return f.tag, f.sweepErr
	}
	return f.tag, f.err
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	f.queries = append(f.queries, sqlCall{sql, args})
	return nil, f.err
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, args ...any) repokit.Row {
	f.queries = append(f.queries, sqlCall{sql, args})
	return f.row
}
