package module

import (
	"codecheck/internal/platform/config"
	"codecheck/internal/services/api/webhook/service"
)

// DefaultPath is the route under /api/v1
const DefaultPath = "/telegram/webhook"

// Options configure the webhook module
type Options struct {
	Path     string
	Secret   string
	MaxInput int

	// BotName and Escape come from the telegram client at wiring time
	BotName string
	Escape  func(string) string
}

// FromConfig reads WEBHOOK_PATH, WEBHOOK_SECRET under CODECHECK_TELEGRAM_ and MAX_INPUT under CODECHECK_CHECK_
func FromConfig(cfg config.Conf) Options {
	tg := cfg.Prefix("CODECHECK_TELEGRAM_")
	return Options{
		Path:     tg.MayString("WEBHOOK_PATH", DefaultPath),
		Secret:   tg.MayString("WEBHOOK_SECRET", ""),
		MaxInput: cfg.Prefix("CODECHECK_CHECK_").MayInt("MAX_INPUT", service.DefaultMaxInput),
	}
}
