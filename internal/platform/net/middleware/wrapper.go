package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"

	pstrings "codecheck/internal/platform/strings"
)

// Middleware is the stdlib middleware shape, chi types never leave this package
type Middleware = func(http.Handler) http.Handler

// RequestID reads or mints X-Request-ID, pnet.RequestID reads it back
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d and answers 504 if nothing was written
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache marks every response uncacheable
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips or deflates responses for clients that accept it
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// Heartbeat answers GET path with 200 before any routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Accept", "Content-Type", "X-Request-ID", "X-Telegram-Bot-Api-Secret-Token"}
)

// CORSOptions is the part of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS fills empty methods and headers with the API defaults
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		MaxAge:         o.MaxAge,
	})
}
