package modkit

import (
	"net/http"

	"codecheck/internal/modkit/module"
)

// Module is what api.Mount mounts
type Module = module.Module

// Built is the resolved form of a module's options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Option adjusts how a module is built
type Option func(*Built)

// WithName overrides the module's default name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module's routes under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends mw, the first one runs outermost
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it needs from other modules
// T is declared by the receiving module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// Build resolves opts in order, nil entries are skipped
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// PortsAs returns the injected ports when they have type T
func PortsAs[T any](b Built) (T, bool) {
	v, ok := b.Ports.(T)
	return v, ok
}
