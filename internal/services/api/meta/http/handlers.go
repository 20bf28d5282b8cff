// Package http serves the meta endpoints: liveness, readiness, build and uptime
package http

import (
	"context"
	"net/http"
	"time"

	"codecheck/internal/core/version"
	"codecheck/internal/modkit/httpkit"
)

// Pinger is implemented by store seams that can report readiness
type Pinger interface {
	Ping(context.Context) error
}

// Backend is one dependency of the ready probe, a nil Seam is a disabled backend
type Backend struct {
	Name string
	Seam any
}

// Deps feed the meta handlers
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Backends    []Backend
	Now         func() time.Time

	// ReadyTimeout bounds all pings together, zero means 2s
	ReadyTimeout time.Duration
}

// check states, a ready probe fails on any fail and degrades on any unknown
const (
	checkOK      = "ok"
	checkFail    = "fail"
	checkSkipped = "skipped"
	checkUnknown = "unknown"

	readyDegraded = "degraded"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck is one backend's result
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is the readiness payload, served with 503 when Status is fail
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse is the uptime payload
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

type handlers struct{ Deps }

// Register mounts health, ready, version and service on r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := handlers{d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.Now())}, nil
}

func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.ReadyTimeout)
	defer cancel()

	resp := ReadyResponse{Status: checkOK, Checks: make([]ReadyCheck, 0, len(h.Backends))}
	for _, b := range h.Backends {
		c := ping(ctx, b)
		resp.Checks = append(resp.Checks, c)
		switch {
		case c.Status == checkFail:
			resp.Status = checkFail
		case c.Status == checkUnknown && resp.Status == checkOK:
			resp.Status = readyDegraded
		}
	}
	resp.Now = stamp(h.Now())

	if resp.Status == checkFail {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: resp}, nil
	}
	return resp, nil
}

func ping(ctx context.Context, b Backend) ReadyCheck {
	c := ReadyCheck{Name: b.Name, Status: checkOK}
	p, ok := b.Seam.(Pinger)
	switch {
	case b.Seam == nil:
		c.Status = checkSkipped
	case !ok:
		c.Status = checkUnknown
	default:
		if err := p.Ping(ctx); err != nil {
			c.Status, c.Error = checkFail, err.Error()
		}
	}
	return c
}

func (h handlers) version(*http.Request) (any, error) {
	return version.For(h.ServiceName), nil
}

func (h handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.Now().Sub(h.StartedAt) / time.Second),
	}, nil
}
