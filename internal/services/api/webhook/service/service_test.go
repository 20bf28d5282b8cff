package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codecheck/internal/core/report"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/testkit"
	"codecheck/internal/services/api/webhook/domain"
	auditdomain "codecheck/internal/services/audit/domain"
	dailydomain "codecheck/internal/services/daily/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	codeA = "AAAAAAAAAAAAAAAAAA"
	codeB = "BBBBBBBBBBBBBBBBBB"
)

type fakeState struct {
	days              map[int64][]string
	dates             []string
	touched           []dailydomain.Day
	loads, saves      int
	resets            int
	saveErr, resetErr error
}

func newState() *fakeState { return &fakeState{days: map[int64][]string{}} }

// Today hands out dates in order, the last one repeats
func (f *fakeState) Today(id int64) dailydomain.Day {
	date := "2024-06-01"
	if len(f.dates) > 0 {
		date = f.dates[0]
		if len(f.dates) > 1 {
			f.dates = f.dates[1:]
		}
	}
	return dailydomain.Day{UserID: id, Date: date}
}

func (f *fakeState) Load(_ context.Context, d dailydomain.Day) ([]string, error) {
	f.loads++
	f.touched = append(f.touched, d)
	return f.days[d.UserID], nil
}

func (f *fakeState) Save(_ context.Context, d dailydomain.Day, codes []string) error {
	f.saves++
	f.touched = append(f.touched, d)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.days[d.UserID] = codes
	return nil
}

func (f *fakeState) Reset(_ context.Context, d dailydomain.Day) error {
	f.resets++
	if f.resetErr != nil {
		return f.resetErr
	}
	delete(f.days, d.UserID)
	return nil
}

type sent struct {
	chat int64
	text string
}

type fakeSender struct {
	out []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, chat int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, sent{chat, text})
	return nil
}

type fakeAudit struct{ got []auditdomain.Submission }

func (f *fakeAudit) Record(_ context.Context, s auditdomain.Submission) { f.got = append(f.got, s) }

func msg(text string) domain.Update {
	return domain.Update{UpdateID: 1, Message: &domain.Message{
		Text: text,
		Chat: domain.Chat{ID: 77},
		From: &domain.User{ID: 5},
	}}
}

func setup(cfg Config) (*Service, *fakeState, *fakeSender, *fakeAudit) {
	st, snd, au := newState(), &fakeSender{}, &fakeAudit{}
	return New(st, snd, au, cfg), st, snd, au
}

func TestHandle_FirstThenSecondSubmission(t *testing.T) {
	s, st, snd, au := setup(Config{})
	ctx := context.Background()

	if err := s.Handle(ctx, msg("1. "+codeA+" "+codeB+" "+codeA+" short")); err != nil {
		t.Fatalf("first: %v", err)
	}
	if got := st.days[5]; len(got) != 2 || got[0] != codeA || got[1] != codeB {
		t.Fatalf("state after first = %v", got)
	}
	if len(snd.out) != 1 || snd.out[0].chat != 77 {
		t.Fatalf("sent = %+v", snd.out)
	}
	first := snd.out[0].text
	testkit.MustContain(t, first, "4. short")
	testkit.MustContain(t, first, "1. "+codeA+" 🔴")
	testkit.MustContain(t, first, "3. "+codeA+" 🔴")
	testkit.MustContain(t, first, report.NoTodayDupe)

	if err := s.Handle(ctx, msg(codeA)); err != nil {
		t.Fatalf("second: %v", err)
	}
	second := snd.out[1].text
	testkit.MustContain(t, second, report.TodayHeader+"\n"+codeA)
	testkit.MustContain(t, second, "New unique codes today: 0")

	if len(au.got) != 2 {
		t.Fatalf("audit rows = %d, want 2", len(au.got))
	}
	if a := au.got[0]; a.Tokens != 4 || a.Valid != 3 || a.Invalid != 1 || a.DupGroups != 1 || a.Fresh != 2 {
		t.Fatalf("first audit = %+v", a)
	}
	if a := au.got[1]; a.CrossDay != 1 || a.Fresh != 0 || a.UserID != 5 || a.ChatID != 77 {
		t.Fatalf("second audit = %+v", a)
	}
}

func TestHandle_Commands(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		want   string
		resets int
		sends  int
	}{
		{"start", "/start", report.StartText, 0, 1},
		{"start addressed", "/start@CodeBot", report.StartText, 0, 1},
		{"start addressed case", "/start@codebot", report.StartText, 0, 1},
		{"reset", "/reset", report.ResetText, 1, 1},
		{"reset padded", "  /reset\n", report.ResetText, 1, 1},
		{"other bot", "/reset@OtherBot", "", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, st, snd, au := setup(Config{BotName: "CodeBot"})
			st.days[5] = []string{codeA}

			if err := s.Handle(context.Background(), msg(c.text)); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if st.loads != 0 || st.saves != 0 {
				t.Fatalf("commands must not load or save, loads=%d saves=%d", st.loads, st.saves)
			}
			if st.resets != c.resets {
				t.Fatalf("resets = %d, want %d", st.resets, c.resets)
			}
			if len(snd.out) != c.sends {
				t.Fatalf("sends = %d, want %d", len(snd.out), c.sends)
			}
			if c.sends > 0 && snd.out[0].text != c.want {
				t.Fatalf("reply = %q", snd.out[0].text)
			}
			if len(au.got) != 0 {
				t.Fatal("commands are not audited")
			}
		})
	}
}

func TestHandle_ResetClearsCross(t *testing.T) {
	s, st, snd, _ := setup(Config{})
	ctx := context.Background()
	_ = s.Handle(ctx, msg(codeA))
	_ = s.Handle(ctx, msg("/reset"))
	_ = s.Handle(ctx, msg(codeA))

	if st.resets != 1 {
		t.Fatalf("resets = %d", st.resets)
	}
	testkit.MustContain(t, snd.out[2].text, report.NoTodayDupe)
}

func TestHandle_LengthGuard(t *testing.T) {
	s, st, snd, _ := setup(Config{MaxInput: 10})
	ctx := context.Background()

	if err := s.Handle(ctx, msg("   "+strings.Repeat("é", 10)+"   ")); err != nil {
		t.Fatalf("at limit: %v", err)
	}
	if st.loads != 1 {
		t.Fatal("text at the limit should be parsed")
	}

	// six emoji are twelve UTF-16 units
	for _, over := range []string{strings.Repeat("x", 11), strings.Repeat("🔴", 6)} {
		if err := s.Handle(ctx, msg(over)); err != nil {
			t.Fatalf("over limit: %v", err)
		}
		if st.loads != 1 {
			t.Fatalf("oversized input %q reached state", over)
		}
		if got := snd.out[len(snd.out)-1].text; got != report.TooLongText {
			t.Fatalf("reply = %q", got)
		}
	}
}

func TestHandle_DefaultMaxInput(t *testing.T) {
	s, _, _, _ := setup(Config{})
	if s.cfg.MaxInput != DefaultMaxInput {
		t.Fatalf("MaxInput = %d", s.cfg.MaxInput)
	}
}

func TestHandle_IgnoresWithoutText(t *testing.T) {
	s, st, snd, _ := setup(Config{})
	updates := []domain.Update{
		{UpdateID: 1},
		{UpdateID: 2, Message: &domain.Message{Text: "x", Chat: domain.Chat{ID: 1}}},
		msg(""),
	}
	for _, u := range updates {
		if err := s.Handle(context.Background(), u); err != nil {
			t.Fatalf("Handle(%+v): %v", u, err)
		}
	}
	if st.loads != 0 || len(snd.out) != 0 {
		t.Fatalf("ignored updates did work, loads=%d sends=%d", st.loads, len(snd.out))
	}
}

func TestHandle_Errors(t *testing.T) {
	t.Run("save fails before send", func(t *testing.T) {
		s, st, snd, au := setup(Config{})
		st.saveErr = perr.DBf("write failed")
		err := s.Handle(context.Background(), msg(codeA))
		if !perr.IsCode(err, perr.ErrorCodeDB) {
			t.Fatalf("err = %v", err)
		}
		if len(snd.out) != 0 || len(au.got) != 0 {
			t.Fatal("nothing is sent or audited after a failed save")
		}
	})

	t.Run("reset fails", func(t *testing.T) {
		s, st, snd, _ := setup(Config{})
		st.resetErr = perr.DBf("delete failed")
		if err := s.Handle(context.Background(), msg("/reset")); err == nil {
			t.Fatal("want error")
		}
		if len(snd.out) != 0 {
			t.Fatal("no confirmation after a failed reset")
		}
	})

	t.Run("plain send error becomes upstream", func(t *testing.T) {
		s, _, snd, au := setup(Config{})
		snd.err = errors.New("connection reset")
		err := s.Handle(context.Background(), msg(codeA))
		if !perr.IsCode(err, perr.ErrorCodeUpstream) {
			t.Fatalf("err = %v, want upstream", err)
		}
		if len(au.got) != 0 {
			t.Fatal("failed replies are not audited")
		}
	})

	t.Run("typed send error kept", func(t *testing.T) {
		s, _, snd, _ := setup(Config{})
		snd.err = perr.Unavailablef("deadline")
		err := s.Handle(context.Background(), msg("/start"))
		if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestHandle_EscapesReply(t *testing.T) {
	s, _, snd, _ := setup(Config{Escape: func(s string) string { return strings.ReplaceAll(s, "_", `\_`) }})
	_ = s.Handle(context.Background(), msg("bad_code"))
	testkit.MustContain(t, snd.out[0].text, `1. bad\_code`)
}

func TestNew_RequiresPorts(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, &fakeSender{}, nil, Config{}) })
	testkit.MustPanic(t, func() { New(newState(), nil, nil, Config{}) })
	testkit.MustNotPanic(t, func() { New(newState(), &fakeSender{}, nil, Config{}).Handle(context.Background(), msg(codeA)) })
}

func TestHandle_WhitespaceGetsEmptyReport(t *testing.T) {
	s, st, snd, _ := setup(Config{})
	if err := s.Handle(context.Background(), msg(" \n\t ")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(snd.out) != 1 {
		t.Fatalf("sends = %d, want 1", len(snd.out))
	}
	testkit.MustContain(t, snd.out[0].text, report.NoInvalid)
	testkit.MustContain(t, snd.out[0].text, "New unique codes today: 0")
	if st.loads != 1 || st.saves != 0 {
		t.Fatalf("loads=%d saves=%d, want 1 and 0", st.loads, st.saves)
	}
}

func TestHandle_SaveOnlyWithState(t *testing.T) {
	cases := []struct {
		name  string
		prev  []string
		text  string
		saves int
	}{
		{"nothing valid on a fresh day", nil, "short bad_code", 0},
		{"first valid code", nil, codeA, 1},
		{"repeat keeps the day alive", []string{codeA}, codeA, 1},
		{"invalid after codes", []string{codeA}, "short", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, st, snd, _ := setup(Config{})
			if tc.prev != nil {
				st.days[5] = tc.prev
			}
			if err := s.Handle(context.Background(), msg(tc.text)); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if st.saves != tc.saves {
				t.Fatalf("saves = %d, want %d", st.saves, tc.saves)
			}
			if len(snd.out) != 1 {
				t.Fatalf("sends = %d, want 1", len(snd.out))
			}
		})
	}
}

func TestHandle_OneDayPerSubmission(t *testing.T) {
	s, st, _, _ := setup(Config{})
	st.dates = []string{"2024-06-01", "2024-06-02"}

	if err := s.Handle(context.Background(), msg(codeA)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(st.touched) != 2 || st.touched[0] != st.touched[1] {
		t.Fatalf("load and save used different days: %+v", st.touched)
	}
	if st.touched[0].Date != "2024-06-01" {
		t.Fatalf("day = %+v", st.touched[0])
	}
}

func TestHandle_RejectedReplyIsDropped(t *testing.T) {
	tooLong := &tgbotapi.Error{Code: 400, Message: "Bad Request: message is too long"}
	cases := []struct {
		name    string
		err     error
		dropped bool
	}{
		{"rejected", perr.Wrap(tooLong, perr.ErrorCodeInvalidArgument, "telegram sendMessage rejected with 400"), true},
		{"server error", perr.Upstreamf("telegram sendMessage failed with 502"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, st, snd, _ := setup(Config{})
			snd.err = tc.err

			err := s.Handle(context.Background(), msg(codeA+" "+codeB))
			if tc.dropped && err != nil {
				t.Fatalf("err = %v, want nil so the update is acknowledged", err)
			}
			if !tc.dropped && !perr.IsCode(err, perr.ErrorCodeUpstream) {
				t.Fatalf("err = %v, want upstream", err)
			}
			if len(st.days[5]) != 2 {
				t.Fatalf("state = %v, saved before sending", st.days[5])
			}
		})
	}
}
