// Package service turns one inbound message into at most one reply
package service

import (
	"context"
	"strings"

	"codecheck/internal/core/check"
	"codecheck/internal/core/report"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"
	pnet "codecheck/internal/platform/net"
	pstrings "codecheck/internal/platform/strings"
	"codecheck/internal/services/api/webhook/domain"
	auditdomain "codecheck/internal/services/audit/domain"
	dailydomain "codecheck/internal/services/daily/domain"
)

// DefaultMaxInput is the length guard in UTF-16 units, below Telegram's 4096 limit
const DefaultMaxInput = 4050

// Bot commands
const (
	CmdStart = "/start"
	CmdReset = "/reset"
)

// Config tunes the service
type Config struct {
	// MaxInput is the longest trimmed text that is parsed, in UTF-16 units
	MaxInput int

	// BotName is the bot's @handle without the @, commands addressed to another bot are ignored
	BotName string

	// Escape makes text safe for the reply parse mode
	Escape func(string) string
}

// Service implements domain.Handler
type Service struct {
	state  dailydomain.StatePort
	sender domain.Sender
	audit  auditdomain.RecorderPort
	cfg    Config
}

// New wires the service, audit may be nil
func New(state dailydomain.StatePort, sender domain.Sender, audit auditdomain.RecorderPort, cfg Config) *Service {
	if state == nil || sender == nil {
		panic("webhook service: state and sender are required")
	}
	if cfg.MaxInput <= 0 {
		cfg.MaxInput = DefaultMaxInput
	}
	return &Service{state: state, sender: sender, audit: audit, cfg: cfg}
}

var _ domain.Handler = (*Service)(nil)

// Handle runs the update through commands, the length guard and the daily check
func (s *Service) Handle(ctx context.Context, u domain.Update) error {
	m := u.Message
	if m == nil || m.From == nil || m.Text == "" {
		return nil
	}
	text := strings.TrimSpace(m.Text)

	userID, chatID := m.From.ID, m.Chat.ID
	ctx = pnet.WithUpdate(ctx, u.UpdateID)
	ctx = logger.WithSender(ctx, userID, chatID)

	if cmd, ok := s.command(text); ok {
		return s.run(ctx, cmd, userID, chatID)
	}

	if n := pstrings.UTF16Len(text); n > s.cfg.MaxInput {
		logger.C(ctx).Info().Int("units", n).Int("max", s.cfg.MaxInput).Msg("input too long")
		return s.send(ctx, chatID, report.TooLongText)
	}

	return s.check(ctx, text, userID, chatID)
}

// command reports whether text is exactly a bot command, optionally as /cmd@BotName
func (s *Service) command(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd, bot, addressed := strings.Cut(text, "@")
	switch cmd {
	case CmdStart, CmdReset:
	default:
		return "", false
	}
	if addressed && s.cfg.BotName != "" && !strings.EqualFold(bot, s.cfg.BotName) {
		return "", true
	}
	return cmd, true
}

func (s *Service) run(ctx context.Context, cmd string, userID, chatID int64) error {
	switch cmd {
	case CmdStart:
		return s.send(ctx, chatID, report.StartText)
	case CmdReset:
		if err := s.state.Reset(ctx, s.state.Today(userID)); err != nil {
			return err
		}
		return s.send(ctx, chatID, report.ResetText)
	}
	// addressed to another bot
	logger.C(ctx).Debug().Msg("command for another bot ignored")
	return nil
}

func (s *Service) check(ctx context.Context, text string, userID, chatID int64) error {
	day := s.state.Today(userID)
	prev, err := s.state.Load(ctx, day)
	if err != nil {
		return err
	}

	out := check.Run(text, prev)
	// no day set is created until a code is accepted
	if len(out.Fresh) > 0 || len(prev) > 0 {
		if err := s.state.Save(ctx, day, out.Merged); err != nil {
			return err
		}
	}

	reply := out.Render(report.Options{Escape: s.cfg.Escape})
	if err := s.send(ctx, chatID, reply); err != nil {
		return err
	}

	logger.C(ctx).Info().
		Int("valid", len(out.Parsed.Valid)).
		Int("invalid", len(out.Parsed.Invalid)).
		Int("dup_groups", len(out.Groups)).
		Int("cross_day", len(out.Cross)).
		Int("fresh", len(out.Fresh)).
		Msg("submission checked")

	if s.audit != nil {
		s.audit.Record(ctx, auditdomain.Submission{
			UserID:    userID,
			ChatID:    chatID,
			Tokens:    out.Parsed.Total(),
			Valid:     len(out.Parsed.Valid),
			Invalid:   len(out.Parsed.Invalid),
			DupGroups: len(out.Groups),
			CrossDay:  len(out.Cross),
			Fresh:     len(out.Fresh),
		})
	}
	return nil
}

// send returns nil when the Bot API refused the reply, redelivery would be refused the same way
func (s *Service) send(ctx context.Context, chatID int64, text string) error {
	err := s.sender.Send(ctx, chatID, text)
	switch {
	case err == nil:
		return nil
	case perr.IsCode(err, perr.ErrorCodeInvalidArgument):
		logger.C(ctx).Warn().Err(err).Int("units", pstrings.UTF16Len(text)).Msg("reply rejected, update dropped")
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeUpstream, "send reply")
}
