package http

import "codecheck/internal/modkit/swaggerkit"

// Docs adds the meta routes under prefix to the OpenAPI document
func Docs(prefix string) swaggerkit.SpecMutator {
	ok := map[string]any{"description": "ok"}
	return func(spec map[string]any) {
		for _, rt := range []struct {
			path, id, summary string
			responses         map[string]any
		}{
			{"/health", "metaHealth", "Liveness", map[string]any{"200": ok}},
			{"/ready", "metaReady", "Readiness with a ping per configured backend", map[string]any{
				"200": ok,
				"503": map[string]any{"description": "a backend failed its ping"},
			}},
			{"/version", "metaVersion", "Build and version info", map[string]any{"200": ok}},
			{"/service", "metaService", "Service name and uptime", map[string]any{"200": ok}},
		} {
			swaggerkit.AddPath(spec, prefix+rt.path, "get", map[string]any{
				"tags":        []any{"Meta"},
				"summary":     rt.summary,
				"operationId": rt.id,
				"responses":   rt.responses,
			})
		}
	}
}
