package middleware

import (
	"crypto/subtle"
	"net/http"

	"codecheck/internal/platform/logger"
)

// SecretHeader requires header name to equal secret
// Mismatching requests are handed to reject instead of next
// An empty secret disables the check
func SecretHeader(name, secret string, reject http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		want := []byte(secret)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(name))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				logger.C(r.Context()).Warn().Str("header", name).Msg("secret header mismatch")
				reject.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
