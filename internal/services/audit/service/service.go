// Package service records processed submissions without ever failing the caller
package service

import (
	"context"
	"time"

	"codecheck/internal/platform/logger"
	ptime "codecheck/internal/platform/time"
	"codecheck/internal/services/audit/domain"

	"github.com/google/uuid"
)

const defaultTimeout = 2 * time.Second

// Recorder implements domain.RecorderPort
type Recorder struct {
	sink    domain.Sink
	timeout time.Duration
	now     func() time.Time
}

// New returns a Recorder, a nil sink records nothing
func New(sink domain.Sink, timeout time.Duration, now func() time.Time) *Recorder {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Recorder{sink: sink, timeout: timeout, now: now}
}

var _ domain.RecorderPort = (*Recorder)(nil)

// Record fills ID, Day and CreatedAt when unset and writes s, errors are logged
func (r *Recorder) Record(ctx context.Context, s domain.Submission) {
	if r == nil || r.sink == nil {
		return
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = r.now().UTC()
	}
	if s.Day.IsZero() {
		s.Day = ptime.Midnight(s.CreatedAt)
	}

	// detached so a finished request does not cancel the write
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()
	if err := r.sink.Write(wctx, []domain.Submission{s}); err != nil {
		logger.C(ctx).Warn().Err(err).Str("submission_id", s.ID.String()).Msg("audit write failed")
		return
	}
	logger.C(ctx).Debug().Str("submission_id", s.ID.String()).Msg("audit recorded")
}
