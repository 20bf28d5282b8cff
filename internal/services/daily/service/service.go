// Package service implements the daily state port over a domain.Repo
package service

import (
	"context"
	"encoding/json"
	"time"

	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"
	"codecheck/internal/services/daily/domain"
)

// DefaultTTL is the freshness window of a saved day set
const DefaultTTL = 24 * time.Hour

// Config for the daily service
type Config struct {
	TTL time.Duration
}

// Service implements domain.StatePort
type Service struct {
	repo domain.Repo
	cfg  Config
	now  func() time.Time
}

// New constructs the service, now may be nil
func New(repo domain.Repo, cfg Config, now func() time.Time) *Service {
	if repo == nil {
		panic("daily.Service requires a non-nil Repo")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, cfg: cfg, now: now}
}

var _ domain.StatePort = (*Service)(nil)

// Today implements domain.StatePort
func (s *Service) Today(userID int64) domain.Day { return domain.DayOf(userID, s.now()) }

// Load implements domain.StatePort and never fails, read problems are logged
func (s *Service) Load(ctx context.Context, d domain.Day) ([]string, error) {
	key := d.Key()
	raw, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("daily state read failed, treating as empty")
		return nil, nil
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("daily state corrupt, treating as empty")
		return nil, nil
	}
	return codes, nil
}

// Save implements domain.StatePort, the TTL restarts on every write
func (s *Service) Save(ctx context.Context, d domain.Day, codes []string) error {
	if codes == nil {
		codes = []string{}
	}
	raw, err := json.Marshal(codes)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode daily state")
	}
	key := d.Key()
	if err := s.repo.Put(ctx, key, string(raw), s.cfg.TTL); err != nil {
		return perr.WithOp(err, "daily.save")
	}
	logger.C(ctx).Debug().Str("key", key).Int("codes", len(codes)).Msg("daily state saved")
	return nil
}

// Reset implements domain.StatePort
func (s *Service) Reset(ctx context.Context, d domain.Day) error {
	key := d.Key()
	if err := s.repo.Delete(ctx, key); err != nil {
		return perr.WithOp(err, "daily.reset")
	}
	logger.C(ctx).Info().Str("key", key).Msg("daily state reset")
	return nil
}
