// Package telegram talks to the Telegram Bot API for replies and webhook registration
package telegram

import (
	"context"
	"errors"
	"net/http"
	"time"

	"codecheck/internal/platform/config"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultTimeout = 10 * time.Second

// Options configures the Client
type Options struct {
	Token string

	// Endpoint is a printf pattern with the token then the method, empty uses the public Bot API
	Endpoint string
	Timeout  time.Duration
}

// FromConfig reads TOKEN, API_ENDPOINT and HTTP_TIMEOUT under CODECHECK_TELEGRAM_
func FromConfig(cfg config.Conf) Options {
	tg := cfg.Prefix("CODECHECK_TELEGRAM_")
	return Options{
		Token:    tg.MustString("TOKEN"),
		Endpoint: tg.MayString("API_ENDPOINT", ""),
		Timeout:  tg.MayDuration("HTTP_TIMEOUT", defaultTimeout),
	}
}

// botAPI is the slice of *tgbotapi.BotAPI the client uses
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
	GetWebhookInfo() (tgbotapi.WebhookInfo, error)
}

// newBot is a seam for tests, the real constructor calls getMe
var newBot = func(o Options) (botAPI, string, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(o.Token, o.Endpoint, &http.Client{Timeout: o.Timeout})
	if err != nil {
		return nil, "", err
	}
	return bot, bot.Self.UserName, nil
}

// Client sends replies and manages the webhook for one bot token
type Client struct {
	bot      botAPI
	username string
	log      logger.Logger
}

// New validates the token against the Bot API and returns a ready Client
func New(o Options) (*Client, error) {
	if o.Token == "" {
		return nil, perr.InvalidArgf("telegram: token is required")
	}
	if o.Endpoint == "" {
		o.Endpoint = tgbotapi.APIEndpoint
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	bot, username, err := newBot(o)
	if err != nil {
		return nil, wrap(err, "getMe")
	}
	return &Client{bot: bot, username: username, log: *logger.Named("telegram")}, nil
}

// Username is the bot's @handle without the @
func (c *Client) Username() string { return c.username }

// Rejected reports whether the Bot API refused the request itself,
// sending it again gives the same answer
func Rejected(code int) bool {
	return code >= 400 && code < 500 && code != http.StatusTooManyRequests
}

// wrap maps Bot API failures to perr codes and keeps the Telegram code in the message:
// refusals are invalid_argument, transport and 5xx failures are upstream
func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "telegram call aborted"), op)
	}
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		if Rejected(apiErr.Code) {
			return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "telegram %s rejected with %d", op, apiErr.Code), op)
		}
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUpstream, "telegram %s failed with %d", op, apiErr.Code), op)
	}
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUpstream, "telegram %s failed", op), op)
}
