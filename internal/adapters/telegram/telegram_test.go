package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"
	"codecheck/internal/platform/testkit"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	method   string
	params   tgbotapi.Params
	info     tgbotapi.WebhookInfo
	err      error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: f.err == nil}, f.err
}

func (f *fakeBot) MakeRequest(method string, p tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	f.method, f.params = method, p
	return &tgbotapi.APIResponse{Ok: f.err == nil}, f.err
}

func (f *fakeBot) GetWebhookInfo() (tgbotapi.WebhookInfo, error) { return f.info, f.err }

func newTestClient(f *fakeBot) *Client {
	return &Client{bot: f, username: "CodeCheckBot", log: *logger.Named("test")}
}

func TestNew(t *testing.T) {
	if _, err := New(Options{}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("empty token err = %v, want invalid argument", err)
	}

	var got Options
	testkit.Swap(t, &newBot, func(o Options) (botAPI, string, error) {
		got = o
		return &fakeBot{}, "CodeCheckBot", nil
	})

	c, err := New(Options{Token: "123:abc"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Username() != "CodeCheckBot" {
		t.Fatalf("Username = %q", c.Username())
	}
	if got.Endpoint != tgbotapi.APIEndpoint || got.Timeout != defaultTimeout {
		t.Fatalf("defaults not applied: %+v", got)
	}
}

func TestNew_GetMeRejected(t *testing.T) {
	testkit.Swap(t, &newBot, func(Options) (botAPI, string, error) {
		return nil, "", &tgbotapi.Error{Code: 401, Message: "Unauthorized"}
	})

	_, err := New(Options{Token: "bad"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid_argument", err)
	}
	testkit.MustContain(t, err.Error(), "401")
}

func TestSend(t *testing.T) {
	f := &fakeBot{}
	c := newTestClient(f)

	if err := c.Send(context.Background(), 42, "hello *world*"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(f.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(f.sent))
	}
	msg, ok := f.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", f.sent[0])
	}
	if msg.ChatID != 42 || msg.Text != "hello *world*" || msg.ParseMode != "Markdown" {
		t.Fatalf("message = %+v", msg)
	}
}

func TestSend_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctx  func() context.Context
		err  error
		code perr.ErrorCode
	}{
		{"parse error", context.Background, &tgbotapi.Error{Code: 400, Message: "can't parse entities"}, perr.ErrorCodeInvalidArgument},
		{"too long", context.Background, &tgbotapi.Error{Code: 400, Message: "Bad Request: message is too long"}, perr.ErrorCodeInvalidArgument},
		{"blocked", context.Background, &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}, perr.ErrorCodeInvalidArgument},
		{"flood", context.Background, &tgbotapi.Error{Code: 429, Message: "Too Many Requests"}, perr.ErrorCodeUpstream},
		{"server", context.Background, &tgbotapi.Error{Code: 502, Message: "Bad Gateway"}, perr.ErrorCodeUpstream},
		{"transport", context.Background, errors.New("connection reset"), perr.ErrorCodeUpstream},
		{"canceled", func() context.Context {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx
		}, nil, perr.ErrorCodeUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeBot{err: tc.err}
			err := newTestClient(f).Send(tc.ctx(), 1, "x")
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v (code %d), want code %d", err, perr.CodeOf(err), tc.code)
			}
			if e, _ := perr.As(err); e.Op() != "sendMessage" {
				t.Fatalf("op = %q, want sendMessage", e.Op())
			}
		})
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"plain":     "plain",
		"a_b":       `a\_b`,
		"*bold*":    `\*bold\*`,
		"`x`":       "\\`x\\`",
		"[link":     `\[link`,
		"ABC123def": "ABC123def",
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Fatalf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetWebhook(t *testing.T) {
	f := &fakeBot{}
	c := newTestClient(f)

	if err := c.SetWebhook(context.Background(), "https://bot.example/api/v1/telegram/webhook", "s3cret", true); err != nil {
		t.Fatalf("SetWebhook: %v", err)
	}
	if f.method != "setWebhook" {
		t.Fatalf("method = %q", f.method)
	}
	if f.params["url"] != "https://bot.example/api/v1/telegram/webhook" ||
		f.params["secret_token"] != "s3cret" ||
		f.params["drop_pending_updates"] != "true" ||
		f.params["allowed_updates"] != `["message"]` {
		t.Fatalf("params = %v", f.params)
	}
}

func TestSetWebhook_NoSecretOmitsParam(t *testing.T) {
	f := &fakeBot{}
	if err := newTestClient(f).SetWebhook(context.Background(), "https://bot.example/hook", "", false); err != nil {
		t.Fatalf("SetWebhook: %v", err)
	}
	if _, ok := f.params["secret_token"]; ok {
		t.Fatal("secret_token should be omitted")
	}
	if _, ok := f.params["drop_pending_updates"]; ok {
		t.Fatal("drop_pending_updates should be omitted")
	}
}

func TestSetWebhook_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"http://bot.example/hook", "/relative", "https://"} {
		err := newTestClient(&fakeBot{}).SetWebhook(context.Background(), u, "", false)
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("url %q err = %v, want invalid argument", u, err)
		}
	}
}

func TestDeleteWebhook(t *testing.T) {
	f := &fakeBot{}
	if err := newTestClient(f).DeleteWebhook(context.Background(), true); err != nil {
		t.Fatalf("DeleteWebhook: %v", err)
	}
	cfg, ok := f.requests[0].(tgbotapi.DeleteWebhookConfig)
	if !ok || !cfg.DropPendingUpdates {
		t.Fatalf("request = %#v", f.requests[0])
	}

	f.err = &tgbotapi.Error{Code: 500, Message: "boom"}
	if err := newTestClient(f).DeleteWebhook(context.Background(), false); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
}

func TestWebhook(t *testing.T) {
	f := &fakeBot{info: tgbotapi.WebhookInfo{
		URL:                "https://bot.example/hook",
		PendingUpdateCount: 3,
		LastErrorDate:      1700000000,
		LastErrorMessage:   "Wrong response from the webhook: 502 Bad Gateway",
	}}
	info, err := newTestClient(f).Webhook(context.Background())
	if err != nil {
		t.Fatalf("Webhook: %v", err)
	}
	if info.URL != "https://bot.example/hook" || info.PendingUpdates != 3 {
		t.Fatalf("info = %+v", info)
	}
	if !info.LastErrorAt.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("LastErrorAt = %v", info.LastErrorAt)
	}
}
