// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyUpdateID ctxKey = "update_id"

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithUpdate annotates context with the chat platform update id being processed
func WithUpdate(ctx context.Context, updateID int64) context.Context {
	return context.WithValue(ctx, keyUpdateID, updateID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// UpdateID returns the update id on the context, ok is false when unset
func UpdateID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(keyUpdateID).(int64)
	return v, ok
}
