// Package httpkit is the module facing side of internal/platform/net/http
// modules import this instead of the platform package
package httpkit

import (
	"net/http"

	phttp "codecheck/internal/platform/net/http"
)

type (
	// Envelope is the JSON body wrapper
	Envelope = phttp.Envelope
	// Response is a return-style handler result
	Response = phttp.Response
	// Handler is a plain handler func
	Handler = phttp.Handler
	// Router is the mount seam
	Router = phttp.Router
)

// OK is a 200 with data
func OK(data any) Response { return phttp.OK(data) }

// Error maps err to its status
func Error(err error) Response { return phttp.Error(err) }

// Call adapts fn, a Response result passes through and anything else is wrapped in OK
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}

// Handle adapts a Response returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Text writes a bare text body
func Text(w http.ResponseWriter, status int, body string) { phttp.Text(w, status, body) }

// RespondError writes err as an error envelope
func RespondError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }
