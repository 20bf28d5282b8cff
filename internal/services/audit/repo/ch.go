// Package repo writes audit rows to ClickHouse
package repo

import (
	"context"

	"codecheck/internal/modkit/repokit"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/services/audit/domain"
)

// Table is the submissions table
const Table = "codecheck_submissions"

// Schema creates Table when missing
const Schema = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
	submission_id UUID,
	user_id       Int64,
	chat_id       Int64,
	day           Date,
	tokens        UInt32,
	valid         UInt32,
	invalid       UInt32,
	dup_groups    UInt32,
	cross_day     UInt32,
	fresh         UInt32,
	created_at    DateTime64(3, 'UTC')
) ENGINE = MergeTree
PARTITION BY toYYYYMM(day)
ORDER BY (day, user_id, created_at)
TTL day + INTERVAL 180 DAY`

// CH is a domain.Sink over a Clickhouse handle
type CH struct{ db repokit.Clickhouse }

// NewCH binds the sink to db
func NewCH(db repokit.Clickhouse) *CH { return &CH{db: db} }

// EnsureSchema applies Schema
func (c *CH) EnsureSchema(ctx context.Context) error {
	return perr.WrapIf(c.db.Exec(ctx, Schema), perr.ErrorCodeDB, "audit ensure schema")
}

// Write inserts xs in one batch
func (c *CH) Write(ctx context.Context, xs []domain.Submission) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, s := range xs {
		rows = append(rows, []any{
			s.ID,
			s.UserID,
			s.ChatID,
			s.Day,
			uint32(s.Tokens),
			uint32(s.Valid),
			uint32(s.Invalid),
			uint32(s.DupGroups),
			uint32(s.CrossDay),
			uint32(s.Fresh),
			s.CreatedAt,
		})
	}
	return perr.WrapIf(c.db.Insert(ctx, Table, rows), perr.ErrorCodeDB, "audit insert")
}
