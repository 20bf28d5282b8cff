// Package bind decodes and validates request bodies
package bind

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"

	perr "codecheck/internal/platform/errors"
	"codecheck/internal/platform/logger"
)

// JSONOptions tunes ParseJSON, the zero value reads everything and tolerates unknown fields
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
}

var (
	strict = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

	jsonMore = func(dec *json.Decoder) bool { return dec.More() }
)

// ParseJSON decodes one JSON value into T and validates it
// without opts the body is capped at 1MB and unknown fields are rejected
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst, zero T
	o := strict
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}
	br := bufio.NewReader(body)
	if _, err := br.Peek(1); err != nil {
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
