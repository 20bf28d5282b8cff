// Package http provides the Telegram webhook endpoint
package http

import (
	stdhttp "net/http"

	"codecheck/internal/modkit/httpkit"
	"codecheck/internal/modkit/swaggerkit"
	"codecheck/internal/platform/logger"
	"codecheck/internal/platform/net/http/bind"
	"codecheck/internal/platform/net/middleware"
	"codecheck/internal/services/api/webhook/domain"
)

// SecretHeaderName carries the secret_token given at setWebhook time
const SecretHeaderName = "X-Telegram-Bot-Api-Secret-Token"

// maxBody bounds an update, text is capped at 4096 by Telegram
const maxBody = 256 << 10

// Options configure the endpoint
type Options struct {
	Path   string
	Secret string
}

// Register mounts the webhook on r, every method reaches it
func Register(r httpkit.Router, o Options, h domain.Handler) {
	hs := &handlers{h: h}
	ack := stdhttp.HandlerFunc(acknowledge)
	r.Handle(o.Path, middleware.SecretHeader(SecretHeaderName, o.Secret, ack)(stdhttp.HandlerFunc(hs.update)))
}

type handlers struct{ h domain.Handler }

func acknowledge(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	httpkit.Text(w, stdhttp.StatusOK, "OK")
}

// update acks everything it does not act on so Telegram stops redelivering
func (hs *handlers) update(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	if r.Method != stdhttp.MethodPost {
		acknowledge(w, r)
		return
	}

	u, err := bind.ParseJSON[domain.Update](r, bind.JSONOptions{MaxBytes: maxBody})
	if err != nil {
		logger.C(r.Context()).Debug().Err(err).Msg("update ignored")
		acknowledge(w, r)
		return
	}

	if err := hs.h.Handle(r.Context(), u); err != nil {
		logger.C(r.Context()).Error().Err(err).Int64("update_id", u.UpdateID).Msg("update failed")
		httpkit.RespondError(w, r, err)
		return
	}
	acknowledge(w, r)
}

// Docs registers the endpoint in the served OpenAPI document
func Docs(path string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.AddPath(spec, path, "post", map[string]any{
			"tags":        []any{"Telegram"},
			"summary":     "Telegram update receiver",
			"operationId": "telegramWebhook",
			"parameters": []any{map[string]any{
				"in":       "header",
				"name":     SecretHeaderName,
				"required": false,
				"schema":   map[string]any{"type": "string"},
			}},
			"requestBody": map[string]any{
				"required": true,
				"content": map[string]any{"application/json": map[string]any{
					"schema": updateSchema(),
				}},
			},
			"responses": map[string]any{
				"200": textResponse("update accepted or ignored"),
				"500": errorResponse("state store failure"),
				"502": errorResponse("reply could not be delivered"),
			},
		})
	}
}

func textResponse(desc string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{"text/plain": map[string]any{
			"schema": map[string]any{"type": "string", "example": "OK"},
		}},
	}
}

func errorResponse(desc string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{"application/json": map[string]any{
			"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
		}},
	}
}

func updateSchema() map[string]any {
	id := map[string]any{"type": "object", "properties": map[string]any{
		"id": map[string]any{"type": "integer", "format": "int64"},
	}}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"update_id": map[string]any{"type": "integer", "format": "int64"},
			"message": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string", "maxLength": 4096},
					"chat": id,
					"from": id,
				},
			},
		},
	}
}
