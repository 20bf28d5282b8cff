package httpkit

import (
	"compress/flate"
	"net/http"
	"strings"
	"time"

	"codecheck/internal/platform/config"
	"codecheck/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
}

// StackFromConfig reads HTTP_TIMEOUT, HTTP_SLOW and CORS_ORIGINS
func StackFromConfig(cfg config.Conf) StackOptions {
	o := StackOptions{
		Timeout:     cfg.MayDuration("HTTP_TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("HTTP_SLOW", 2*time.Second),
	}
	if v := cfg.MayString("CORS_ORIGINS", ""); v != "" {
		o.CORSOrigins = splitCSV(v)
	}
	return o
}

// CommonStack returns a baseline middleware slice for the API scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.LogContext,
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
