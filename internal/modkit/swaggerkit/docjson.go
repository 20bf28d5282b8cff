package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"

	"codecheck/internal/core/version"
)

// SpecMutator lets modules add their paths to the served spec
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register adds a spec mutator, modules call it from their constructor
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops every registered mutator, for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

// AddPath sets spec.paths[path][method] = op
func AddPath(spec map[string]any, path, method string, op map[string]any) {
	child(child(spec, "paths"), path)[method] = op
}

// Build assembles the OpenAPI document served at /api/docs/doc.json
func Build() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "codecheck API",
			"version": version.Get().Version,
		},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   map[string]any{},
	}

	mu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.Unlock()
	for _, m := range ms {
		m(spec)
	}

	ensureErrorResponseDefinition(spec)
	addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
	})
	return spec
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Build())
	}
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"required":    []any{"status_code", "status"},
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
}

// ensureErrorResponseDefinition adds components.schemas.ErrorResponse unless a module did
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema
	}
}

// addDefaultResponse gives every operation a status response unless it declares one
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{"application/json": map[string]any{
			"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": example,
		}},
	}
	for _, node := range child(spec, "paths") {
		ops, _ := node.(map[string]any)
		for _, v := range ops {
			op, ok := v.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, ok := responses[status]; !ok {
				responses[status] = resp
			}
		}
	}
}
