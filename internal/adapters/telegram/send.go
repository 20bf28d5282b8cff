package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ParseMode is the formatting mode used for every reply
const ParseMode = tgbotapi.ModeMarkdown

// Escape makes user supplied text safe inside a ParseMode message
func Escape(text string) string { return tgbotapi.EscapeText(ParseMode, text) }

// Send posts text to chatID as one Markdown message
func (c *Client) Send(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return wrap(err, "sendMessage")
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = ParseMode
	msg.DisableWebPagePreview = true

	if _, err := c.bot.Send(msg); err != nil {
		c.log.Warn().Err(err).Int64("chat_id", chatID).Int("len", len(text)).Msg("telegram send failed")
		return wrap(err, "sendMessage")
	}
	return nil
}
