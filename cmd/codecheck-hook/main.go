// Command codecheck-hook registers, removes or inspects the bot's webhook
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"codecheck/internal/adapters/telegram"
	"codecheck/internal/platform/config"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"
)

// hooks is the slice of *telegram.Client this command drives
type hooks interface {
	SetWebhook(ctx context.Context, rawURL, secret string, dropPending bool) error
	DeleteWebhook(ctx context.Context, dropPending bool) error
	Webhook(ctx context.Context) (telegram.WebhookInfo, error)
}

func main() {
	root := config.New()
	tg := root.Prefix("CODECHECK_TELEGRAM_")

	var (
		fAction = flag.String("action", "info", "set | delete | info")
		fURL    = flag.String("url", "", "public https URL of the webhook (set)")
		fSecret = flag.String("secret", tg.MayString("WEBHOOK_SECRET", ""), "secret_token Telegram echoes back (set)")
		fDrop   = flag.Bool("drop-pending", false, "drop updates queued while no webhook was reachable")
		fTO     = flag.Duration("timeout", 15*time.Second, "overall timeout")
	)
	flag.Parse()

	l := logger.Named("codecheck-hook")

	c, err := telegram.New(telegram.FromConfig(root))
	if err != nil {
		l.Fatal().Err(err).Msg("telegram client failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *fTO)
	defer cancel()

	if err := run(ctx, os.Stdout, c, *fAction, *fURL, *fSecret, *fDrop); err != nil {
		l.Fatal().Err(err).Str("action", *fAction).Str("bot", c.Username()).Msg("webhook action failed")
	}
}

func run(ctx context.Context, w io.Writer, h hooks, action, url, secret string, drop bool) error {
	switch action {
	case "set":
		if err := h.SetWebhook(ctx, url, secret, drop); err != nil {
			return err
		}
	case "delete":
		if err := h.DeleteWebhook(ctx, drop); err != nil {
			return err
		}
	case "info":
	default:
		return perr.InvalidArgf("unknown action %q", action)
	}

	info, err := h.Webhook(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
