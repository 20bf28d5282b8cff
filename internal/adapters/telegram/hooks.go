package telegram

import (
	"context"
	"net/url"
	"time"

	perr "codecheck/internal/platform/errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WebhookInfo is the registration state reported by Telegram
type WebhookInfo struct {
	URL              string    `json:"url"`
	PendingUpdates   int       `json:"pending_update_count"`
	LastErrorAt      time.Time `json:"last_error_at,omitzero"`
	LastErrorMessage string    `json:"last_error_message,omitempty"`
	MaxConnections   int       `json:"max_connections,omitempty"`
	AllowedUpdates   []string  `json:"allowed_updates,omitempty"`
}

// SetWebhook points the bot at rawURL, secret is echoed by Telegram in X-Telegram-Bot-Api-Secret-Token
func (c *Client) SetWebhook(ctx context.Context, rawURL, secret string, dropPending bool) error {
	if err := ctx.Err(); err != nil {
		return wrap(err, "setWebhook")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return perr.WithField(perr.InvalidArgf("webhook url must be an absolute https url"), "url")
	}

	p := tgbotapi.Params{}
	p.AddNonEmpty("url", u.String())
	p.AddNonEmpty("secret_token", secret)
	p.AddBool("drop_pending_updates", dropPending)
	if err := p.AddInterface("allowed_updates", []string{"message"}); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode allowed_updates")
	}

	if _, err := c.bot.MakeRequest("setWebhook", p); err != nil {
		return wrap(err, "setWebhook")
	}
	c.log.Info().Str("url", u.String()).Bool("secret", secret != "").Msg("webhook registered")
	return nil
}

// DeleteWebhook removes the registration
func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	if err := ctx.Err(); err != nil {
		return wrap(err, "deleteWebhook")
	}
	if _, err := c.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: dropPending}); err != nil {
		return wrap(err, "deleteWebhook")
	}
	c.log.Info().Msg("webhook deleted")
	return nil
}

// Webhook returns the current registration
func (c *Client) Webhook(ctx context.Context) (WebhookInfo, error) {
	if err := ctx.Err(); err != nil {
		return WebhookInfo{}, wrap(err, "getWebhookInfo")
	}
	in, err := c.bot.GetWebhookInfo()
	if err != nil {
		return WebhookInfo{}, wrap(err, "getWebhookInfo")
	}
	out := WebhookInfo{
		URL:              in.URL,
		PendingUpdates:   in.PendingUpdateCount,
		LastErrorMessage: in.LastErrorMessage,
		MaxConnections:   in.MaxConnections,
		AllowedUpdates:   in.AllowedUpdates,
	}
	if in.LastErrorDate > 0 {
		out.LastErrorAt = time.Unix(int64(in.LastErrorDate), 0).UTC()
	}
	return out, nil
}
